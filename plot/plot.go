// Package plot renders state-space snapshots as go-echarts HTML pages.
package plot

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/golang/glog"

	"github.com/CodeStranger-Fred/blackjack/mdp"
)

func dealerAxis() []string {
	var labels []string
	for d := mdp.MinDealerCard; d <= mdp.MaxDealerCard; d++ {
		if d == 1 {
			labels = append(labels, "A")
			continue
		}
		labels = append(labels, fmt.Sprint(d))
	}
	return labels
}

func playerAxis() []string {
	var labels []string
	for p := mdp.MinPlayerSum; p <= mdp.MaxPlayerSum; p++ {
		labels = append(labels, fmt.Sprint(p))
	}
	return labels
}

func heatmap(title string, lo, hi float32, colors []string) *charts.HeatMap {
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "dealer", Type: "category", Data: dealerAxis()}),
		charts.WithYAxisOpts(opts.YAxis{Name: "player", Type: "category", Data: playerAxis()}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        lo,
			Max:        hi,
			InRange:    &opts.VisualMapInRange{Color: colors},
		}),
	)
	hm.SetXAxis(dealerAxis())
	return hm
}

// cells maps every state with the given ace flag to [dealer, player, value]
// using axis positions.
func cells(value func(mdp.State) float64, usableAce bool) []opts.HeatMapData {
	items := make([]opts.HeatMapData, 0, mdp.NumStates/2)
	for p := mdp.MinPlayerSum; p <= mdp.MaxPlayerSum; p++ {
		for d := mdp.MinDealerCard; d <= mdp.MaxDealerCard; d++ {
			s := mdp.State{PlayerSum: p, DealerCard: d, UsableAce: usableAce}
			items = append(items, opts.HeatMapData{
				Value: [3]interface{}{d - mdp.MinDealerCard, p - mdp.MinPlayerSum, value(s)},
			})
		}
	}
	return items
}

func aceLabel(usableAce bool) string {
	if usableAce {
		return "usable ace"
	}
	return "no usable ace"
}

// ValueHeatmaps plots the state-value estimates of a snapshot.
func ValueHeatmaps(snap mdp.Snapshot) []*charts.HeatMap {
	var out []*charts.HeatMap
	for _, ace := range []bool{false, true} {
		hm := heatmap(fmt.Sprintf("V after %d episodes, %s", snap.Episode, aceLabel(ace)),
			-1, 1, []string{"#d73027", "#ffffbf", "#1a9850"})
		hm.AddSeries("value", cells(snap.Space.Estimate, ace))
		out = append(out, hm)
	}
	return out
}

// PolicyHeatmaps plots the named policy, 0 for HIT and 1 for STICK.
func PolicyHeatmaps(snap mdp.Snapshot, policy mdp.PolicyName) []*charts.HeatMap {
	action := func(s mdp.State) float64 {
		return float64(snap.Space.Policy(s, policy).Index())
	}
	var out []*charts.HeatMap
	for _, ace := range []bool{false, true} {
		hm := heatmap(fmt.Sprintf("%s policy after %d episodes, %s", policy, snap.Episode, aceLabel(ace)),
			0, 1, []string{"#4575b4", "#fdae61"})
		hm.AddSeries(string(policy), cells(action, ace))
		out = append(out, hm)
	}
	return out
}

// DurationLine plots per-episode processing time for the retained snapshots.
func DurationLine(snaps []mdp.Snapshot) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "episode processing time"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "µs"}),
	)

	var episodes []string
	items := make([]opts.LineData, 0, len(snaps))
	for _, s := range snaps {
		episodes = append(episodes, fmt.Sprint(s.Episode))
		items = append(items, opts.LineData{Value: float64(s.Duration.Nanoseconds()) / 1e3})
	}
	line.SetXAxis(episodes).AddSeries("duration", items)
	return line
}

// WritePage renders every chart into one HTML page.
func WritePage(w io.Writer, charters ...components.Charter) error {
	page := components.NewPage()
	page.PageTitle = "Monte Carlo Blackjack"
	page.AddCharts(charters...)
	return page.Render(w)
}

// Report builds the standard page for a run: values and both policies of the
// last snapshot plus the timing line.
func Report(w io.Writer, snaps []mdp.Snapshot) error {
	if len(snaps) == 0 {
		return fmt.Errorf("plot: no snapshots")
	}
	last := snaps[len(snaps)-1]
	var charters []components.Charter
	for _, hm := range ValueHeatmaps(last) {
		charters = append(charters, hm)
	}
	for _, policy := range []mdp.PolicyName{mdp.Target, mdp.Behaviour} {
		for _, hm := range PolicyHeatmaps(last, policy) {
			charters = append(charters, hm)
		}
	}
	charters = append(charters, DurationLine(snaps))
	return WritePage(w, charters...)
}

// WriteReport writes Report to dir/name, creating dir if needed.
func WriteReport(dir, name string, snaps []mdp.Snapshot) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Report(f, snaps); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// Serve blocks serving dir over HTTP.
func Serve(addr, dir string) error {
	fs := http.FileServer(http.Dir(dir))
	glog.Infof("running server at http://%s", addr)
	return http.ListenAndServe(addr, fs)
}
