package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/egret-data/egret"
	"github.com/egret-data/egret/internal/version"
)

func customUsage() {
	fmt.Fprintf(os.Stderr, "Egret DataFrame Library CLI (version %s)\n\n", version.Version)
	fmt.Fprintf(os.Stderr, "Usage: egret-cli [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  --demo\n\t\tRun basic demo\n")
	fmt.Fprintf(os.Stderr, "  --benchmark\n\t\tRun benchmark tests\n")
	fmt.Fprintf(os.Stderr, "  --rows N\n\t\tNumber of rows to use (default: 1000 for demo, 1000000 for benchmark)\n")
	fmt.Fprintf(os.Stderr, "  -v, --version\n\t\tPrint version information and exit\n")
	fmt.Fprintf(os.Stderr, "  -h, --help\n\t\tShow this help message and exit\n")
}

func main() {
	versionFlag := flag.Bool("v", false, "Print version and exit")
	flag.BoolVar(versionFlag, "version", false, "Print version and exit") // alias
	demoFlag := flag.Bool("demo", false, "Run basic demo")
	benchmarkFlag := flag.Bool("benchmark", false, "Run benchmark tests")
	rowsFlag := flag.Int("rows", 0, "Number of rows to use (default: 1000 for demo, 1000000 for benchmark)")

	//nolint:reassign // Standard Go pattern for customizing flag usage message
	flag.Usage = customUsage

	flag.Parse()

	if *versionFlag {
		fmt.Print(version.Info().String())
		return
	}

	switch {
	case *demoFlag:
		runDemo(*rowsFlag)
	case *benchmarkFlag:
		runBenchmark(*rowsFlag)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

const (
	baseAge            = 25
	ageRange           = 40
	baseSalary         = 40000
	salaryIncrement    = 1000
	salaryRange        = 60
	ageFilterThreshold = 35  // filter for employees older than this age
	bonusPercentage    = 0.1 // bonus as 10% of salary
)

func buildEmployeeFrame(rows int) *egret.DataFrame {
	depts := []string{"Engineering", "Sales", "Marketing", "HR", "Finance"}

	names := make([]any, rows)
	ages := make([]any, rows)
	salaries := make([]any, rows)
	departments := make([]any, rows)
	for i := range rows {
		names[i] = fmt.Sprintf("Employee_%d", i+1)
		ages[i] = baseAge + (i % ageRange)
		salaries[i] = float64(baseSalary + (i%salaryRange)*salaryIncrement)
		departments[i] = depts[i%len(depts)]
	}

	return egret.NewDataFrameFromColumns(
		egret.NewSeries("name", names),
		egret.NewSeries("age", ages),
		egret.NewSeries("salary", salaries),
		egret.NewSeries("department", departments),
	)
}

func runDemo(rows int) {
	fmt.Println("Egret DataFrame Library Demo")
	fmt.Println("============================")

	if rows == 0 {
		rows = 1000
	}

	fmt.Println("Creating sample dataset...")
	df := buildEmployeeFrame(rows)

	fmt.Printf("Created DataFrame with %d rows and %d columns\n", df.Count(), len(df.GetColumnNames()))
	fmt.Println("Columns:", df.GetColumnNames())
	fmt.Println()

	fmt.Println("Composing lazy pipeline:")
	fmt.Println("1. Filter employees older than 35")
	fmt.Println("2. Add bonus column (10% of salary)")
	fmt.Println("3. Sort by salary descending, then name")

	filtered := df.
		Where(func(row egret.Row) bool {
			age, _ := row["age"].(int)
			return age > ageFilterThreshold
		}).
		Select(func(row egret.Row) egret.Row {
			salary, _ := row["salary"].(float64)
			return egret.Row{
				"name":       row["name"],
				"age":        row["age"],
				"salary":     salary,
				"bonus":      salary * bonusPercentage,
				"department": row["department"],
			}
		})

	ordered, err := filtered.OrderByDescending("salary")
	if err != nil {
		log.Printf("Error ordering frame: %v", err)
		return
	}
	ordered, err = ordered.ThenBy("name")
	if err != nil {
		log.Printf("Error extending sort: %v", err)
		return
	}

	fmt.Println("\nExecuting lazy pipeline...")
	result := ordered.ToValues()
	fmt.Printf("Result: %d rows, %d columns\n", len(result), len(ordered.GetColumnNames()))
	if len(result) > 0 {
		fmt.Println("Top row:", result[0])
	}
	fmt.Println("Demo completed successfully!")
}

func runBenchmark(rows int) {
	fmt.Println("Egret DataFrame Library Benchmark")
	fmt.Println("=================================")

	if rows == 0 {
		rows = 1_000_000
	}

	fmt.Printf("\nBenchmarking DataFrame creation for %d rows...\n", rows)
	start := time.Now()
	df := buildEmployeeFrame(rows)
	fmt.Printf("DataFrame Creation Time: %s\n", time.Since(start))

	fmt.Printf("\nBenchmarking lazy filter + projection + sort for %d rows...\n", rows)
	start = time.Now()
	filtered := df.
		Where(func(row egret.Row) bool {
			age, _ := row["age"].(int)
			return age > ageFilterThreshold
		}).
		Select(func(row egret.Row) egret.Row {
			salary, _ := row["salary"].(float64)
			row["bonus"] = salary * bonusPercentage
			return row
		})
	ordered, err := filtered.OrderByDescending("salary")
	if err != nil {
		log.Printf("Error during benchmark: %v", err)
		os.Exit(1)
	}
	result := ordered.ToValues()
	fmt.Printf("Lazy Evaluation Time: %s (%d rows out)\n", time.Since(start), len(result))

	fmt.Println("\nBenchmark suite completed successfully!")
}
