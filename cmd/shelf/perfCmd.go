package shelf

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ValentinKolb/dShelf/cmd/util"
	"github.com/ValentinKolb/dShelf/lib/shelf"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for dShelf servers",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfNumThreads = 10
	perfOps        = 1000
	perfSkip       = make([]string, 0)
)

// perfTest is one benchmarked operation, i is the running number of the call
type perfTest struct {
	name string
	call func(i int) error
}

var perfTests = []perfTest{
	{"tabs", func(int) error {
		_, err := rpcShelf.Tabs()
		return err
	}},
	{"tab", func(i int) error {
		_, err := rpcShelf.BooksForTab(perfTabs[i%len(perfTabs)])
		return err
	}},
	{"books", func(int) error {
		_, err := rpcShelf.AllBooks()
		return err
	}},
	{"verify", func(int) error {
		_, err := rpcShelf.Verify()
		return err
	}},
	{"form", func(i int) error {
		_, err := rpcShelf.FormNumber(perfTabs[i%len(perfTabs)], i%10)
		return err
	}},
	{"library", func(i int) error {
		_, err := rpcShelf.AssignLibrary("perf title " + strconv.Itoa(i))
		return err
	}},
	{"stamp", func(i int) error {
		_, _, err := rpcShelf.Stamp(time.Unix(int64(i)*86400, 0).UTC().Format("Jan 2 2006"), shelf.StampRed)
		return err
	}},
	{"card", func(i int) error {
		_, _, err := rpcShelf.Card(perfTabs[i%len(perfTabs)], 0)
		return err
	}},
}

// perfTabs is filled from the server before the tests start
var perfTabs []string

// perfResult is the outcome of one test
type perfResult struct {
	name    string
	timer   gometrics.Timer
	errors  gometrics.Counter
	elapsed time.Duration
	skipped bool
}

func init() {
	// add flags
	key := "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. verify,card)"))
	key = "threads"
	perfTestCmd.Flags().Int(key, 10, util.WrapString("Number of concurrent clients to use for the benchmark"))
	key = "ops"
	perfTestCmd.Flags().Int(key, 1000, util.WrapString("Number of requests per benchmark"))
	key = "csv"
	perfTestCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfNumThreads = max(1, viper.GetInt("threads"))
	perfOps = max(1, viper.GetInt("ops"))
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {
	fmt.Println("Performance testing tool for dShelf servers")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(util.GetClientConfig().String())
	fmt.Printf("Threads: %d, Requests per test: %d\n", perfNumThreads, perfOps)
	fmt.Println()

	tabs, err := rpcShelf.Tabs()
	if err != nil {
		return fmt.Errorf("server not reachable: %w", err)
	}
	if len(tabs) == 0 {
		return fmt.Errorf("shelf %d has no tabs", util.GetShelfID())
	}
	perfTabs = tabs

	fmt.Println("starting tests...")

	registry := gometrics.NewRegistry()
	results := make([]perfResult, 0, len(perfTests))
	for _, test := range perfTests {
		res := runPerfTest(registry, test)
		results = append(results, res)
		printResult(res)
	}

	if csvPath := viper.GetString("csv"); csvPath != "" {
		if err := writeResultsToCSV(csvPath, results); err != nil {
			return err
		}
		fmt.Printf("\nresults written to %s\n", csvPath)
	}
	return nil
}

// runPerfTest calls the test perfOps times spread over perfNumThreads goroutines
func runPerfTest(registry gometrics.Registry, test perfTest) perfResult {
	res := perfResult{
		name:   test.name,
		timer:  gometrics.GetOrRegisterTimer(test.name+".latency", registry),
		errors: gometrics.GetOrRegisterCounter(test.name+".errors", registry),
	}
	if slices.Contains(perfSkip, test.name) {
		res.skipped = true
		return res
	}

	start := time.Now()
	var g errgroup.Group
	for thread := range perfNumThreads {
		g.Go(func() error {
			for i := thread; i < perfOps; i += perfNumThreads {
				var err error
				res.timer.Time(func() { err = test.call(i) })
				if err != nil {
					res.errors.Inc(1)
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	res.elapsed = time.Since(start)

	return res
}

// opsPerSec returns the throughput of a finished test
func (r perfResult) opsPerSec() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.timer.Count()) / r.elapsed.Seconds()
}

// printResult prints a formatted benchmark result
func printResult(r perfResult) {
	if r.skipped {
		fmt.Printf("%-10s(skipped)\n", r.name)
		return
	}

	p := r.timer.Percentiles([]float64{0.5, 0.99})
	fmt.Printf("%-10s%8.0f ops/sec\tmean %s\tp50 %s\tp99 %s\terrors %d\n",
		r.name,
		r.opsPerSec(),
		time.Duration(r.timer.Mean()),
		time.Duration(p[0]),
		time.Duration(p[1]),
		r.errors.Count(),
	)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results []perfResult) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	config := util.GetClientConfig()

	// Write header
	header := []string{
		"Test", "Requests", "Errors", "OpsPerSec", "MeanNs", "P50Ns", "P99Ns", "Skipped",
		"Endpoints", "TimeoutSec", "RetryCount", "ConnectionsPerEndpoint",
		"ShelfID", "Serializer", "Threads",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	for _, r := range results {
		p := r.timer.Percentiles([]float64{0.5, 0.99})
		row := []string{
			r.name,
			strconv.FormatInt(r.timer.Count(), 10),
			strconv.FormatInt(r.errors.Count(), 10),
			fmt.Sprintf("%.0f", r.opsPerSec()),
			fmt.Sprintf("%.0f", r.timer.Mean()),
			fmt.Sprintf("%.0f", p[0]),
			fmt.Sprintf("%.0f", p[1]),
			strconv.FormatBool(r.skipped),
			strings.Join(config.Endpoints, ";"),
			strconv.Itoa(config.TimeoutSecond),
			strconv.Itoa(config.RetryCount),
			strconv.Itoa(config.ConnectionsPerEndpoint),
			strconv.FormatUint(util.GetShelfID(), 10),
			viper.GetString("serializer"),
			strconv.Itoa(perfNumThreads),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for test %s: %v", r.name, err)
		}
	}

	return nil
}
