package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"video-planner/config"
	"video-planner/orchestrator"
	"video-planner/requirements"
	"video-planner/selector"
	"video-planner/types"
)

var (
	configFile     string
	briefFile      string
	describe       string
	mode           string
	quality        string
	maxCostPerShot float64
	maxTotalCost   float64
	outputDir      string
)

func main() {
	// .env is optional; real runs configure through config.yaml
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "video-planner",
		Short: "Plan AI video production from a brief to a costed shot-by-shot plan",
		Long: `video-planner turns a video brief into a production plan: narrative beats,
a shot list with technical metadata, and a workflow per shot selected from a
catalog of scored generation capabilities with cost and time estimates.`,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path (default: built-in)")

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Run the full pipeline: brief → beats → shots → production plan",
		RunE:  runPlan,
	}
	planCmd.Flags().StringVarP(&briefFile, "brief", "b", "", "Requirements brief (YAML file)")
	planCmd.Flags().StringVarP(&describe, "describe", "d", "", "Free-text description to infer a brief from")
	planCmd.Flags().StringVarP(&mode, "mode", "m", "", "Execution mode: hitl or yolo")
	planCmd.Flags().StringVarP(&quality, "quality", "q", "", "Quality priority: high, balanced, budget")
	planCmd.Flags().Float64Var(&maxCostPerShot, "max-cost-per-shot", 0, "Per-shot budget cap in USD (0 = unlimited)")
	planCmd.Flags().Float64Var(&maxTotalCost, "max-total-cost", 0, "Total budget cap in USD (0 = unlimited)")
	planCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for run artifacts")
	rootCmd.AddCommand(planCmd)

	beatsCmd := &cobra.Command{
		Use:   "beats",
		Short: "Generate only the beat script from a brief",
		RunE:  runBeats,
	}
	beatsCmd.Flags().StringVarP(&briefFile, "brief", "b", "", "Requirements brief (YAML file)")
	beatsCmd.Flags().StringVarP(&describe, "describe", "d", "", "Free-text description to infer a brief from")
	rootCmd.AddCommand(beatsCmd)

	shotsCmd := &cobra.Command{
		Use:   "shots",
		Short: "Generate the script and shot list from a brief, without costing",
		RunE:  runShots,
	}
	shotsCmd.Flags().StringVarP(&briefFile, "brief", "b", "", "Requirements brief (YAML file)")
	shotsCmd.Flags().StringVarP(&describe, "describe", "d", "", "Free-text description to infer a brief from")
	rootCmd.AddCommand(shotsCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Report which implementation backs each stage under the current config",
		RunE:  runStatus,
	}
	rootCmd.AddCommand(statusCmd)

	catalogCmd := &cobra.Command{
		Use:   "catalog [file]",
		Short: "Validate a capability catalog file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCatalog,
	}
	rootCmd.AddCommand(catalogCmd)

	if err := rootCmd.Execute(); err != nil {
		errorColor.Println("Error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

// loadBrief reads the brief from --brief (YAML) or infers one from --describe
func loadBrief() (*types.RequirementsDocument, error) {
	switch {
	case briefFile != "":
		data, err := os.ReadFile(briefFile)
		if err != nil {
			return nil, fmt.Errorf("read brief: %w", err)
		}
		var req types.RequirementsDocument
		if err := yaml.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("parse brief: %w", err)
		}
		return &req, nil
	case describe != "":
		return requirements.Infer(describe), nil
	default:
		return nil, fmt.Errorf("either --brief or --describe is required")
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	req, err := loadBrief()
	if err != nil {
		return err
	}

	orch, err := orchestrator.New(cfg, types.GenerationMode(mode))
	if err != nil {
		return err
	}

	headerColor.Printf("🎬 Planning %q (%ds %s, %s mode)\n",
		req.ProjectName, req.DurationSeconds, req.VideoType, orch.Mode())

	constraints := types.Constraints{
		QualityPriority:   types.QualityPriority(quality),
		MaxCostPerShotUSD: maxCostPerShot,
		MaxTotalCostUSD:   maxTotalCost,
	}

	var result *orchestrator.StageResult
	if orch.Mode() == types.ModeHITL {
		result, err = runInteractive(orch, req, constraints)
	} else {
		result, err = orch.RunFullPipeline(req, constraints)
	}
	if err != nil {
		return err
	}

	printScript(orch.Script())
	printShotList(orch.ShotList())
	printPlan(result.Plan)

	if metrics := orch.Supervisor().Metrics(); metrics.Mode != "optimal" {
		warningColor.Printf("\n⚠️  Pipeline ran in %s mode (%d fallbacks)\n", metrics.Mode, metrics.FallbackCount)
		for _, reason := range metrics.Reasons {
			warningColor.Printf("    %s\n", reason)
		}
	}

	return saveArtifacts(cfg, orch)
}

// runInteractive walks the HITL state machine on the terminal: answer the
// clarifying questions, then approve or regenerate each artifact.
func runInteractive(orch *orchestrator.Orchestrator, req *types.RequirementsDocument, constraints types.Constraints) (*orchestrator.StageResult, error) {
	reader := bufio.NewReader(os.Stdin)

	result, err := orch.SetRequirements(req)
	if err != nil {
		return nil, err
	}
	if result.Status == orchestrator.StatusNeedsClarification {
		answers := map[string]string{}
		infoColor.Printf("📋 %d clarifying questions:\n", len(result.Questions))
		for _, q := range result.Questions {
			fmt.Printf("  %s", q.Prompt)
			if q.Default != "" {
				fmt.Printf(" [%s]", q.Default)
			}
			fmt.Print(": ")
			answer, _ := reader.ReadString('\n')
			answer = strings.TrimSpace(answer)
			if answer == "" {
				answer = q.Default
			}
			if answer != "" {
				answers[q.Key] = answer
			}
		}
		if _, err := orch.ProvideClarifications(answers); err != nil {
			return nil, err
		}
	}

	if err := approveLoop(reader, "script", func() (*orchestrator.StageResult, error) {
		result, err := orch.GenerateScript()
		if err == nil {
			printScript(result.Script)
		}
		return result, err
	}, orch.ApproveScript); err != nil {
		return nil, err
	}

	if err := approveLoop(reader, "shot list", func() (*orchestrator.StageResult, error) {
		result, err := orch.GenerateShots()
		if err == nil {
			printShotList(result.ShotList)
		}
		return result, err
	}, orch.ApproveShots); err != nil {
		return nil, err
	}

	result, err = orch.GeneratePlan(constraints)
	if err != nil {
		return nil, err
	}
	printPlan(result.Plan)
	if !confirm(reader, "Approve this production plan?") {
		return nil, fmt.Errorf("plan rejected")
	}
	return orch.ApprovePlan()
}

// approveLoop regenerates an artifact until the user approves it
func approveLoop(reader *bufio.Reader, label string, generate func() (*orchestrator.StageResult, error), approve func() (*orchestrator.StageResult, error)) error {
	for {
		if _, err := generate(); err != nil {
			return err
		}
		if confirm(reader, fmt.Sprintf("Approve this %s?", label)) {
			_, err := approve()
			return err
		}
		infoColor.Printf("🔄 Regenerating %s...\n", label)
	}
}

func confirm(reader *bufio.Reader, prompt string) bool {
	fmt.Printf("\n%s (Y/n): ", prompt)
	response, _ := reader.ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "" || response == "y" || response == "yes"
}

func saveArtifacts(cfg *config.Config, orch *orchestrator.Orchestrator) error {
	dir := outputDir
	if dir == "" {
		dir = filepath.Join(cfg.Paths.Output, "run_"+uuid.NewString()[:8])
	}
	artifacts := []struct {
		name string
		v    interface{}
	}{
		{"script.json", orch.Script()},
		{"shot_list.json", orch.ShotList()},
		{"production_plan.json", orch.Plan()},
		{"supervisor.json", orch.Supervisor().Metrics()},
	}
	for _, a := range artifacts {
		path, err := saveJSON(dir, a.name, a.v)
		if err != nil {
			return err
		}
		infoColor.Printf("📄 %s\n", path)
	}
	successColor.Println("✅ Planning complete")
	return nil
}

func runBeats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	req, err := loadBrief()
	if err != nil {
		return err
	}

	orch, err := orchestrator.New(cfg, types.ModeYOLO)
	if err != nil {
		return err
	}
	if _, err := orch.SetRequirements(req); err != nil {
		return err
	}
	result, err := orch.GenerateScript()
	if err != nil {
		return err
	}

	printScript(result.Script)
	if !result.Script.Timing.Valid {
		for _, issue := range result.Script.Timing.Issues {
			warningColor.Printf("⚠️  %s\n", issue)
		}
	}
	return nil
}

func runShots(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	req, err := loadBrief()
	if err != nil {
		return err
	}

	orch, err := orchestrator.New(cfg, types.ModeYOLO)
	if err != nil {
		return err
	}
	if _, err := orch.SetRequirements(req); err != nil {
		return err
	}
	if _, err := orch.GenerateScript(); err != nil {
		return err
	}
	result, err := orch.GenerateShots()
	if err != nil {
		return err
	}

	printScript(orch.Script())
	printShotList(result.ShotList)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	orch, err := orchestrator.New(cfg, types.GenerationMode(cfg.Pipeline.DefaultMode))
	if err != nil {
		return err
	}

	metrics := orch.Supervisor().Metrics()
	switch metrics.Mode {
	case "optimal":
		successColor.Printf("✅ Mode: %s\n", metrics.Mode)
	case "degraded":
		warningColor.Printf("⚠️  Mode: %s (%d fallbacks)\n", metrics.Mode, metrics.FallbackCount)
	default:
		errorColor.Printf("❌ Mode: %s\n", metrics.Mode)
	}
	for component, count := range metrics.FallbackByComponent {
		warningColor.Printf("  %s: %d fallback(s)\n", component, count)
	}
	for _, reason := range metrics.Reasons {
		fmt.Printf("  %s\n", reason)
	}
	infoColor.Printf("Default mode: %s, strict: %v\n", cfg.Pipeline.DefaultMode, cfg.Pipeline.StrictMode)
	return nil
}

func runCatalog(cmd *cobra.Command, args []string) error {
	var cat selector.Catalog
	if len(args) == 0 {
		cat = selector.DefaultCatalog()
		infoColor.Println("No file given, checking the built-in catalog")
	} else {
		var err error
		cat, err = selector.LoadCatalog(args[0])
		if err != nil {
			return err
		}
	}

	successColor.Printf("✅ Catalog valid: %d capabilities (schema v%d)\n", len(cat.Capabilities), cat.Version)
	for _, cap := range cat.Capabilities {
		fmt.Printf("  %-14s %-28s %-8s quality %.1f, $%.2f/s\n",
			cap.ID, cap.Name, cap.Category, cap.QualityScore, cap.CostPerSecond)
	}
	return nil
}
