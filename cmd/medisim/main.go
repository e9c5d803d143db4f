package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/openmedicare/medisim/internal/breakeven"
	"github.com/openmedicare/medisim/internal/calculation"
	"github.com/openmedicare/medisim/internal/compare"
	"github.com/openmedicare/medisim/internal/config"
	"github.com/openmedicare/medisim/internal/domain"
	"github.com/openmedicare/medisim/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "medisim %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "medisim",
	Short: "Medicare out-of-pocket cost simulator",
	Long:  "Monte Carlo simulation of lifetime out-of-pocket Medicare costs across Medigap plans",
}

// loadPlanForRun resolves a plan from either --plan (preset name) or the
// first plan of an --input scenario file, then applies any flag overrides.
func loadPlanForRun(cmd *cobra.Command, presetFlag, inputFlag string) (*domain.Plan, error) {
	preset, _ := cmd.Flags().GetString(presetFlag)
	inputFile, _ := cmd.Flags().GetString(inputFlag)

	var plan *domain.Plan
	var err error

	switch {
	case preset != "":
		plan, err = domain.PresetPlan(preset)
		if err != nil {
			return nil, err
		}

	case inputFile != "":
		parser := config.NewInputParser()
		scenario, err := parser.LoadScenarioFile(inputFile)
		if err != nil {
			return nil, err
		}
		if len(scenario.Plans) == 0 {
			return nil, fmt.Errorf("scenario file %s contains no plans", inputFile)
		}
		plan, err = scenario.Plans[0].Resolve()
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("either --%s or --%s is required", presetFlag, inputFlag)
	}

	return applyPlanOverrides(cmd, plan)
}

// applyPlanOverrides layers --percent-sick and --years on top of a resolved
// plan. Only flags the user actually set are applied.
func applyPlanOverrides(cmd *cobra.Command, plan *domain.Plan) (*domain.Plan, error) {
	if cmd.Flags().Changed("percent-sick") {
		percentSick, _ := cmd.Flags().GetFloat64("percent-sick")
		plan.PercentSick = decimal.NewFromFloat(percentSick)
	}
	if cmd.Flags().Changed("years") {
		years, _ := cmd.Flags().GetInt("years")
		plan.SimulationYears = years
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// runSettings reads --trials and --seed, falling back to the scenario file's
// simulation block when --input was given and the flags were left alone.
func runSettings(cmd *cobra.Command) (trials int, seed int64) {
	trials, _ = cmd.Flags().GetInt("trials")
	seed, _ = cmd.Flags().GetInt64("seed")

	inputFile, _ := cmd.Flags().GetString("input")
	if inputFile == "" {
		return trials, seed
	}
	scenario, err := config.NewInputParser().LoadScenarioFile(inputFile)
	if err != nil {
		return trials, seed
	}
	if !cmd.Flags().Changed("trials") {
		trials = scenario.Simulation.Trials
	}
	if !cmd.Flags().Changed("seed") {
		seed = scenario.Simulation.Seed
	}
	return trials, seed
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a Monte Carlo cost simulation for one plan",
	Long: `Run a Monte Carlo simulation of annual and lifetime out-of-pocket
costs for a single plan.

Examples:
  medisim simulate --plan plan-g
  medisim simulate --plan plan-hdg --trials 5000 --percent-sick 0.35
  medisim simulate --input scenario.yaml --format csv
  medisim simulate --plan plan-n --format json --output ./reports
`,
	Run: func(cmd *cobra.Command, args []string) {
		plan, err := loadPlanForRun(cmd, "plan", "input")
		if err != nil {
			log.Fatal(err)
		}

		engine, err := calculation.NewEngine(plan)
		if err != nil {
			log.Fatal(err)
		}
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.SetLogger(calculation.StdLogger{})
		}

		trials, seed := runSettings(cmd)

		var result *calculation.ComprehensiveResult
		workers, _ := cmd.Flags().GetInt("parallel")
		if workers > 1 {
			result, err = engine.RunComprehensiveParallel(seed, trials, workers)
		} else {
			result, err = engine.RunComprehensiveSeeded(seed, trials)
		}
		if err != nil {
			log.Fatal(err)
		}

		formatName, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			log.Fatalf("unknown output format %q (valid: %s)",
				formatName, strings.Join(output.AvailableFormatterNames(), ", "))
		}

		outputDir, _ := cmd.Flags().GetString("output")
		if outputDir != "" {
			path, err := output.WriteFormatted(formatter, result, outputDir)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Report written to %s\n", path)
			return
		}

		data, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two plans with matched Monte Carlo runs",
	Long: `Simulate two plans and report mean, median, spread, and the
difference in lifetime costs between them.

Examples:
  medisim compare --plan-a plan-g --plan-b plan-hdg
  medisim compare --plan-a plan-g --plan-b plan-n --trials 5000 --format csv
  medisim compare --input scenario.yaml --format json
`,
	Run: func(cmd *cobra.Command, args []string) {
		planA, planB, err := loadPlanPair(cmd)
		if err != nil {
			log.Fatal(err)
		}

		comparator := compare.NewComparator()
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			comparator.SetLogger(calculation.StdLogger{})
		}

		trials, seed := runSettings(cmd)
		result, err := comparator.ComparePlans(planA, planB, trials, seed)
		if err != nil {
			log.Fatal(err)
		}

		formatName, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(formatName) {
		case "csv":
			formatter := &compare.CSVFormatter{}
			text, err := formatter.Format(result)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(text)

		case "json":
			formatter := &compare.JSONFormatter{Pretty: true}
			text, err := formatter.Format(result)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(text)

		case "table", "console", "":
			formatter := &compare.TableFormatter{}
			text, err := formatter.Format(result)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(text)

		default:
			log.Fatalf("unknown output format %q (valid: table, csv, json)", formatName)
		}
	},
}

// loadPlanPair resolves the A and B plans from --plan-a/--plan-b or the
// first two plans of an --input scenario file.
func loadPlanPair(cmd *cobra.Command) (*domain.Plan, *domain.Plan, error) {
	presetA, _ := cmd.Flags().GetString("plan-a")
	presetB, _ := cmd.Flags().GetString("plan-b")
	inputFile, _ := cmd.Flags().GetString("input")

	if presetA != "" && presetB != "" {
		planA, err := domain.PresetPlan(presetA)
		if err != nil {
			return nil, nil, err
		}
		planB, err := domain.PresetPlan(presetB)
		if err != nil {
			return nil, nil, err
		}
		if planA, err = applyPlanOverrides(cmd, planA); err != nil {
			return nil, nil, err
		}
		if planB, err = applyPlanOverrides(cmd, planB); err != nil {
			return nil, nil, err
		}
		return planA, planB, nil
	}

	if inputFile == "" {
		return nil, nil, fmt.Errorf("either --plan-a/--plan-b or --input is required")
	}

	scenario, err := config.NewInputParser().LoadScenarioFile(inputFile)
	if err != nil {
		return nil, nil, err
	}
	if len(scenario.Plans) < 2 {
		return nil, nil, fmt.Errorf("scenario file %s must contain at least two plans, got %d",
			inputFile, len(scenario.Plans))
	}
	planA, err := scenario.Plans[0].Resolve()
	if err != nil {
		return nil, nil, err
	}
	planB, err := scenario.Plans[1].Resolve()
	if err != nil {
		return nil, nil, err
	}
	if planA, err = applyPlanOverrides(cmd, planA); err != nil {
		return nil, nil, err
	}
	if planB, err = applyPlanOverrides(cmd, planB); err != nil {
		return nil, nil, err
	}
	return planA, planB, nil
}

var breakEvenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Find the percent-sick level where two plans cost the same",
	Long: `Solve the expected-cost model for the sickness probability at which
two plans have equal expected lifetime cost, and report which plan is
cheaper on either side of it.

Examples:
  medisim breakeven --plan-a plan-g --plan-b plan-hdg
  medisim breakeven --input scenario.yaml --sweep 11
`,
	Run: func(cmd *cobra.Command, args []string) {
		planA, planB, err := loadPlanPair(cmd)
		if err != nil {
			log.Fatal(err)
		}

		analysis, err := breakeven.NewAnalysis(planA, planB)
		if err != nil {
			log.Fatal(err)
		}
		result, err := analysis.Solve()
		if err != nil {
			log.Fatal(err)
		}

		fmt.Print(breakeven.FormatBreakEven(analysis, result))

		steps, _ := cmd.Flags().GetInt("sweep")
		if steps > 0 {
			if err := printSweep(planA, planB, steps); err != nil {
				log.Fatal(err)
			}
		}
	},
}

// printSweep prints expected lifetime cost for both plans across the
// percent-sick grid.
func printSweep(planA, planB *domain.Plan, steps int) error {
	pointsA, err := calculation.RunPercentSickSweep(planA, steps)
	if err != nil {
		return err
	}
	pointsB, err := calculation.RunPercentSickSweep(planB, steps)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("EXPECTED LIFETIME COST BY PERCENT SICK")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("%-14s %16s %16s\n", "Percent Sick", planA.Name, planB.Name)
	for i := range pointsA {
		fmt.Printf("%-14s %16s %16s\n",
			pointsA[i].PercentSick.StringFixed(2),
			"$"+pointsA[i].ExpectedLifetimeCost.StringFixed(2),
			"$"+pointsB[i].ExpectedLifetimeCost.StringFixed(2))
	}
	return nil
}

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List the built-in plan presets",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("BUILT-IN PLAN PRESETS")
		fmt.Println(strings.Repeat("-", 50))
		for _, name := range domain.PresetNames() {
			plan, err := domain.PresetPlan(name)
			if err != nil {
				continue
			}
			fmt.Printf("%-10s %s\n", name, plan.Name)
			fmt.Printf("           premium $%s/mo, deductible $%s, Part D $%s/mo, Part B deductible $%s\n",
				plan.Premium2026.StringFixed(2),
				plan.PlanDeductible2026.StringFixed(2),
				plan.PartDPremium2026.StringFixed(2),
				plan.PartBDeductible2026.StringFixed(2))
			if plan.Specialist != nil {
				fmt.Printf("           %d specialist visits/yr at $%s copay\n",
					plan.Specialist.VisitsPerYear, plan.Specialist.Copay2026.StringFixed(2))
			}
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a scenario file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		scenario, err := parser.LoadScenarioFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Scenario file %s is valid (%d trials, seed %d)\n",
			inputFile, scenario.Simulation.Trials, scenario.Simulation.Seed)
		for i := range scenario.Plans {
			plan, err := scenario.Plans[i].Resolve()
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("  plan %d: %s (%d years starting %d)\n",
				i+1, plan.Name, plan.SimulationYears, plan.StartYear)
		}
	},
}

func init() {
	simulateCmd.Flags().String("plan", "", "Plan preset name (see 'medisim plans')")
	simulateCmd.Flags().StringP("input", "i", "", "Scenario YAML file (first plan is simulated)")
	simulateCmd.Flags().Int("trials", config.DefaultTrials, "Number of Monte Carlo trials")
	simulateCmd.Flags().Int64("seed", config.DefaultSeed, "Random seed")
	simulateCmd.Flags().Float64("percent-sick", domain.DefaultPercentSick, "Probability a simulated year is a sick year")
	simulateCmd.Flags().Int("years", domain.DefaultSimulationYears, "Simulation horizon in years")
	simulateCmd.Flags().StringP("format", "f", "console", "Output format (console, csv, lifetime-csv, percentiles-csv, json)")
	simulateCmd.Flags().StringP("output", "o", "", "Write the report to this directory instead of stdout")
	simulateCmd.Flags().Int("parallel", 1, "Worker count for parallel trial execution")
	simulateCmd.Flags().Bool("debug", false, "Enable debug logging")

	compareCmd.Flags().String("plan-a", "", "First plan preset")
	compareCmd.Flags().String("plan-b", "", "Second plan preset")
	compareCmd.Flags().StringP("input", "i", "", "Scenario YAML file (first two plans are compared)")
	compareCmd.Flags().Int("trials", config.DefaultTrials, "Number of Monte Carlo trials per plan")
	compareCmd.Flags().Int64("seed", config.DefaultSeed, "Random seed")
	compareCmd.Flags().Float64("percent-sick", domain.DefaultPercentSick, "Probability a simulated year is a sick year")
	compareCmd.Flags().Int("years", domain.DefaultSimulationYears, "Simulation horizon in years")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("debug", false, "Enable debug logging")

	breakEvenCmd.Flags().String("plan-a", "", "First plan preset")
	breakEvenCmd.Flags().String("plan-b", "", "Second plan preset")
	breakEvenCmd.Flags().StringP("input", "i", "", "Scenario YAML file (first two plans are analyzed)")
	breakEvenCmd.Flags().Float64("percent-sick", domain.DefaultPercentSick, "Probability a simulated year is a sick year")
	breakEvenCmd.Flags().Int("years", domain.DefaultSimulationYears, "Simulation horizon in years")
	breakEvenCmd.Flags().Int("sweep", 0, "Also print an expected-cost sweep with this many grid points")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(breakEvenCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
