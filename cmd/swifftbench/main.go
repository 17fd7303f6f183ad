// Command swifftbench measures the throughput of every compiled-in
// SWIFFT tier, checks that all tiers agree, and renders the results as
// an HTML bar chart.
//
//	swifftbench [-blocks n] [-rounds r] [-out report.html]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/klauspost/cpuid/v2"

	"github.com/benjivesterby/go-swifft/swifft"
)

type result struct {
	tier      swifft.Tier
	supported bool
	elapsed   time.Duration
	mbps      float64
}

// Features reported by cpuid for each tier, shown next to the
// golang.org/x/sys/cpu probe used by swifft.Best().
var tier_features = map[swifft.Tier][]cpuid.FeatureID{
	swifft.AVX:    {cpuid.AVX},
	swifft.AVX2:   {cpuid.AVX2},
	swifft.AVX512: {cpuid.AVX512F, cpuid.AVX512BW},
}

func main() {
	blocks := flag.Int("blocks", 4096, "number of 256-byte blocks per round")
	rounds := flag.Int("rounds", 5, "number of rounds per tier")
	out := flag.String("out", "swifft_bench.html", "output HTML report")
	flag.Parse()
	if *blocks < 1 || *rounds < 1 {
		log.Fatalf("blocks and rounds must be positive")
	}

	tab := swifft.StandardTables()
	in := make([]byte, *blocks*tab.InputBlockSize())
	swifft.SeededInput([]byte("swifftbench"), in)

	fmt.Printf("CPU: %s (%d logical cores)\n", cpuid.CPU.BrandName, cpuid.CPU.LogicalCores)
	fmt.Printf("static tier: %s, best tier: %s\n", swifft.Static().Tier, swifft.Best().Tier)

	results, err := measure(tab, in, *blocks, *rounds)
	if err != nil {
		log.Fatalf("measure: %v", err)
	}

	fmt.Printf("%-10s %-10s %-10s %12s %10s\n", "tier", "probe", "cpuid", "time", "MB/s")
	for _, r := range results {
		fmt.Printf("%-10s %-10v %-10v %12s %10.2f\n", r.tier, r.supported,
			has_features(r.tier), r.elapsed, r.mbps)
	}

	if err := render(*out, results, *blocks); err != nil {
		log.Fatalf("render report: %v", err)
	}
	fmt.Printf("report written to %s\n", *out)
}

// Time every compiled-in tier over the input blocks, keeping the best
// round. An error is returned if two tiers disagree.
func measure(tab *swifft.Tables, in []byte, blocks int, rounds int) ([]result, error) {
	var ref []uint16
	var results []result
	for _, tier := range swifft.Tiers() {
		c, _ := swifft.Lookup(tier)
		hv := make([]uint16, blocks*tab.N)
		best := time.Duration(0)
		for r := 0; r < rounds; r++ {
			start := time.Now()
			c.ComputeMultiple(tab, blocks, in, hv)
			d := time.Since(start)
			if best == 0 || d < best {
				best = d
			}
		}
		if ref == nil {
			ref = hv
		} else {
			for i := range hv {
				if hv[i] != ref[i] {
					return nil, fmt.Errorf("tier %s disagrees with %s at element %d",
						tier, swifft.Baseline, i)
				}
			}
		}
		if best <= 0 {
			best = time.Nanosecond
		}
		mb := float64(len(in)) / (1 << 20)
		results = append(results, result{
			tier:      tier,
			supported: swifft.Supported(tier),
			elapsed:   best,
			mbps:      mb / best.Seconds(),
		})
	}
	return results, nil
}

func has_features(tier swifft.Tier) bool {
	for _, f := range tier_features[tier] {
		if !cpuid.CPU.Has(f) {
			return false
		}
	}
	return true
}

func render(path string, results []result, blocks int) error {
	labels := make([]string, len(results))
	items := make([]opts.BarData, len(results))
	for i, r := range results {
		labels[i] = r.tier.String()
		items[i] = opts.BarData{Value: fmt.Sprintf("%.2f", r.mbps)}
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "SWIFFT throughput per tier (MB/s)",
			Subtitle: fmt.Sprintf("%s, %d blocks", cpuid.CPU.BrandName, blocks),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "swifftbench", Width: "1000px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("MB/s", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))

	page := components.NewPage()
	page.AddCharts(bar)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
