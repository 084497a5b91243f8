// Package main provides the CLI entrypoint for prepterm.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nvoloshin/prepterm/internal/api"
	"github.com/nvoloshin/prepterm/internal/bank"
	"github.com/nvoloshin/prepterm/internal/config"
	"github.com/nvoloshin/prepterm/internal/evaluate"
	"github.com/nvoloshin/prepterm/internal/model"
	"github.com/nvoloshin/prepterm/internal/question"
	"github.com/nvoloshin/prepterm/internal/resultsui"
	"github.com/nvoloshin/prepterm/internal/session"
	"github.com/nvoloshin/prepterm/internal/stats"
	"github.com/nvoloshin/prepterm/internal/store"
	"github.com/nvoloshin/prepterm/internal/tui"
	"github.com/nvoloshin/prepterm/internal/voice"
)

const (
	defaultType        = "behavioral"
	defaultCurveWindow = 20
	defaultLimit       = 20
	fetchTimeout       = 30 * time.Second
	authTimeout        = 15 * time.Second
)

var (
	runType      string
	runDuration  int
	runQuestions int
	runJDPath    string
	runVoice     bool
	runReadAloud bool
	runBackend   string
	runOffline   bool
	runFocusWeak bool

	resultsType        string
	resultsSince       string
	resultsLast        int
	resultsCurveWindow int

	leaderboardLimit int

	authEmail string
	authName  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "prepterm",
		Short:         "Terminal interview practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runInterviewCmd,
	}

	rootCmd.Flags().StringVar(&runType, "type", defaultType, "interview type")
	rootCmd.Flags().IntVar(&runDuration, "duration", 0, "interview length in minutes (0 = type default)")
	rootCmd.Flags().IntVar(&runQuestions, "questions", 0, "number of questions (0 = type default)")
	rootCmd.Flags().StringVar(&runJDPath, "jd", "", "path to a job description file for tailored questions")
	rootCmd.Flags().BoolVar(&runVoice, "voice", false, "enable voice answers")
	rootCmd.Flags().BoolVar(&runReadAloud, "read-aloud", false, "read each question aloud")
	rootCmd.Flags().StringVar(&runBackend, "backend", "", "backend base URL")
	rootCmd.Flags().BoolVar(&runOffline, "offline", false, "skip the backend and use local questions and scoring")
	rootCmd.Flags().BoolVar(&runFocusWeak, "focus-weak", false, "bias questions toward your weakest skills from past sessions")

	rootCmd.AddCommand(newRetakeCmd())
	rootCmd.AddCommand(newResultsCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newTypesCmd())
	rootCmd.AddCommand(newBanksCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runInterviewCmd(cmd *cobra.Command, _ []string) error {
	config.LoadEnv()
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "type", &runType, fileCfg.Interview.Type)
	applyIntConfig(cmd, "duration", &runDuration, fileCfg.Interview.Duration)
	applyIntConfig(cmd, "questions", &runQuestions, fileCfg.Interview.Questions)
	applyBoolConfig(cmd, "voice", &runVoice, fileCfg.Interview.Voice)
	applyBoolConfig(cmd, "read-aloud", &runReadAloud, fileCfg.Interview.ReadAloud)

	cfg, err := config.ResolveType(runType, fileCfg.Types)
	if err != nil {
		return err
	}
	if runDuration > 0 {
		cfg.DurationMinutes = runDuration
	}
	if runQuestions > 0 {
		cfg.QuestionCount = runQuestions
	}
	if cfg.DurationMinutes <= 0 || cfg.QuestionCount <= 0 {
		return fmt.Errorf("--duration and --questions must be > 0")
	}
	if runFocusWeak {
		if skills := weakestSkills(cfg.Name); len(skills) > 0 {
			cfg.Skills = skills
			logErrf("focusing on: %s\n", strings.Join(skills, ", "))
		}
	}
	if runJDPath != "" {
		data, err := os.ReadFile(runJDPath)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		cfg.JobDescription = strings.TrimSpace(string(data))
	}

	state, err := store.LoadState(config.DefaultStatePath())
	if err != nil {
		return err
	}
	client := newAPIClient(cmd, fileCfg, &state)

	attemptID := uuid.NewString()
	raws := sourceQuestions(client, cfg, state)

	state.LastSessionID = attemptID
	state.LastQuestions = raws
	state.LastInterviewType = store.StoredTypeFrom(cfg)
	state.LastJobDescription = cfg.JobDescription
	if err := store.SaveState(config.DefaultStatePath(), state); err != nil {
		logErrf("failed to save state: %v\n", err)
	}

	questions := question.Normalize(raws, cfg)
	return launchInterview(cfg, questions, attemptID, client, fileCfg)
}

const focusSkillCount = 3

// weakestSkills pulls the lowest-scoring skills for the interview type from
// local history. Any failure falls back to the configured skill set.
func weakestSkills(interviewType string) []string {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db: %v\n", err)
		return nil
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	skills, err := stats.FocusSkillsForType(context.Background(), st, interviewType, focusSkillCount)
	if err != nil {
		logErrf("failed to load skill history: %v\n", err)
		return nil
	}
	return skills
}

// sourceQuestions walks the question source chain: backend, cached set from
// the previous run of the same type, local bank. An empty return falls back
// to the built-in bank inside the normalizer.
func sourceQuestions(client *api.Client, cfg model.InterviewType, state store.State) []question.Raw {
	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		raws, err := client.FetchQuestions(ctx, cfg)
		if err == nil && len(raws) > 0 {
			return raws
		}
		if err != nil {
			logErrf("question generation unavailable: %v\n", err)
		}
	}
	if len(state.LastQuestions) > 0 && strings.EqualFold(state.LastInterviewType.Name, cfg.Name) {
		logErrln("using cached questions from the previous run")
		return state.LastQuestions
	}
	raws, err := bank.LoadForType(config.DefaultBankDir(), cfg.Name)
	if err != nil {
		logErrf("failed to load question bank: %v\n", err)
	}
	if len(raws) > 0 {
		return raws
	}
	logErrln("using built-in questions")
	return nil
}

func launchInterview(cfg model.InterviewType, questions []model.Question, attemptID string, client *api.Client, fileCfg config.FileConfig) error {
	ctrl, err := session.New(attemptID, questions)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	capture := buildCapture(fileCfg)
	speaker := buildSpeaker(fileCfg)

	var primary evaluate.Evaluator
	var ranking evaluate.RankingBoundary
	var metrics evaluate.MetricsBoundary
	if client != nil {
		primary = evaluate.NewRemote(client, attemptID)
		ranking = client
		metrics = client
	}
	assembler := evaluate.NewAssembler(primary, evaluate.Heuristic{}, ranking, metrics)

	m := tui.NewModel(ctrl, cfg, capture, speaker, assembler, st, runReadAloud)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func buildCapture(fileCfg config.FileConfig) *voice.Capture {
	if !runVoice {
		return nil
	}
	commandLine := ""
	if fileCfg.Voice.CaptureCommand != nil {
		commandLine = strings.TrimSpace(*fileCfg.Voice.CaptureCommand)
	}
	if commandLine == "" {
		logErrln("voice enabled but no capture-command configured; voice answers are unavailable")
		return nil
	}
	recognizer, err := voice.NewCommandRecognizer(commandLine)
	if err != nil {
		logErrf("invalid capture-command: %v\n", err)
		return nil
	}
	return voice.NewCapture(recognizer)
}

func buildSpeaker(fileCfg config.FileConfig) voice.Speaker {
	commandLine := ""
	if fileCfg.Voice.SpeakCommand != nil {
		commandLine = strings.TrimSpace(*fileCfg.Voice.SpeakCommand)
	}
	if commandLine == "" {
		return voice.NopSpeaker{}
	}
	speaker, err := voice.NewCommandSpeaker(commandLine)
	if err != nil {
		logErrf("invalid speak-command: %v\n", err)
		return voice.NopSpeaker{}
	}
	return speaker
}

func newAPIClient(cmd *cobra.Command, fileCfg config.FileConfig, state *store.State) *api.Client {
	if runOffline {
		return nil
	}
	baseURL := resolveBackendURL(cmd, fileCfg)
	opts := []api.Option{api.WithSessionID(state.SessionID)}
	if token := resolveToken(*state); token != "" {
		opts = append(opts, api.WithToken(token))
	}
	if state.Tokens.Refresh != "" {
		opts = append(opts, api.WithRefresh(state.Tokens.Refresh, func(tokens model.TokenPair) {
			state.Tokens = tokens
			if err := store.SaveState(config.DefaultStatePath(), *state); err != nil {
				logErrf("failed to save refreshed tokens: %v\n", err)
			}
		}))
	}
	region := ""
	if fileCfg.Profile.Region != nil {
		region = *fileCfg.Profile.Region
	}
	years := 0
	if fileCfg.Profile.ExperienceYears != nil {
		years = *fileCfg.Profile.ExperienceYears
	}
	if region != "" || years > 0 {
		opts = append(opts, api.WithProfile(region, years))
	}
	if fileCfg.Backend.TimeoutSeconds != nil && *fileCfg.Backend.TimeoutSeconds > 0 {
		opts = append(opts, api.WithHTTPClient(&http.Client{
			Timeout: time.Duration(*fileCfg.Backend.TimeoutSeconds) * time.Second,
		}))
	}
	return api.NewClient(baseURL, opts...)
}

func resolveBackendURL(cmd *cobra.Command, fileCfg config.FileConfig) string {
	if cmd != nil && cmd.Flags().Changed("backend") {
		return runBackend
	}
	if v := config.BackendURLFromEnv(); v != "" {
		return v
	}
	if fileCfg.Backend.URL != nil && *fileCfg.Backend.URL != "" {
		return *fileCfg.Backend.URL
	}
	return config.DefaultBackendURL
}

func resolveToken(state store.State) string {
	if state.Tokens.Access != "" {
		return state.Tokens.Access
	}
	return config.APIKeyFromEnv()
}

func newRetakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retake",
		Short: "Repeat the previous interview with the same questions",
		Args:  cobra.NoArgs,
		RunE:  runRetakeCmd,
	}
	cmd.Flags().StringVar(&runBackend, "backend", "", "backend base URL")
	cmd.Flags().BoolVar(&runOffline, "offline", false, "skip the backend and use local questions and scoring")
	cmd.Flags().BoolVar(&runVoice, "voice", false, "enable voice answers")
	cmd.Flags().BoolVar(&runReadAloud, "read-aloud", false, "read each question aloud")
	return cmd
}

func runRetakeCmd(cmd *cobra.Command, _ []string) error {
	config.LoadEnv()
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "voice", &runVoice, fileCfg.Interview.Voice)
	applyBoolConfig(cmd, "read-aloud", &runReadAloud, fileCfg.Interview.ReadAloud)

	state, err := store.LoadState(config.DefaultStatePath())
	if err != nil {
		return err
	}
	if state.LastInterviewType.Name == "" {
		return fmt.Errorf("no previous interview to retake")
	}
	cfg := state.LastInterviewType.ToInterviewType(state.LastJobDescription)
	client := newAPIClient(cmd, fileCfg, &state)

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	var boundary session.RetakeBoundary
	if client != nil {
		boundary = client
	}
	questions, err := session.RetakeQuestions(ctx, boundary, state.LastSessionID, state.LastQuestions, cfg)
	if err != nil {
		return err
	}

	attemptID := uuid.NewString()
	state.LastSessionID = attemptID
	if err := store.SaveState(config.DefaultStatePath(), state); err != nil {
		logErrf("failed to save state: %v\n", err)
	}
	return launchInterview(cfg, questions, attemptID, client, fileCfg)
}

func newResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Open the results dashboard",
		RunE:  runResultsCmd,
	}
	cmd.Flags().StringVar(&resultsType, "type", "", "interview type filter")
	cmd.Flags().StringVar(&resultsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&resultsLast, "last", 0, "limit to last N interviews")
	cmd.Flags().IntVar(&resultsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().StringVar(&runBackend, "backend", "", "backend base URL")
	cmd.Flags().BoolVar(&runOffline, "offline", false, "skip the backend leaderboard")
	return cmd
}

func runResultsCmd(cmd *cobra.Command, _ []string) error {
	config.LoadEnv()
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var sinceTime *time.Time
	if resultsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", resultsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	filter := model.HistoryFilter{
		InterviewType: resultsType,
		Since:         sinceTime,
		Last:          resultsLast,
		CurveWindow:   resultsCurveWindow,
	}

	state, err := store.LoadState(config.DefaultStatePath())
	if err != nil {
		return err
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	var leaderboard resultsui.LeaderboardBoundary
	if client := newAPIClient(cmd, fileCfg, &state); client != nil {
		leaderboard = client
	}
	m := resultsui.NewModel(st, filter, leaderboard)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run results TUI: %w", err)
	}
	return nil
}

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the backend leaderboard",
		Args:  cobra.NoArgs,
		RunE:  runLeaderboardCmd,
	}
	cmd.Flags().IntVar(&leaderboardLimit, "limit", defaultLimit, "number of entries")
	cmd.Flags().StringVar(&runBackend, "backend", "", "backend base URL")
	return cmd
}

func runLeaderboardCmd(cmd *cobra.Command, _ []string) error {
	config.LoadEnv()
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	state, err := store.LoadState(config.DefaultStatePath())
	if err != nil {
		return err
	}
	client := newAPIClient(cmd, fileCfg, &state)
	if client == nil {
		return fmt.Errorf("leaderboard requires a backend")
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	entries, err := client.Leaderboard(ctx, leaderboardLimit)
	if err != nil {
		return err
	}
	return stats.RenderLeaderboard(cmd.OutOrStdout(), entries)
}

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store auth tokens",
		Args:  cobra.NoArgs,
		RunE:  runLoginCmd,
	}
	cmd.Flags().StringVar(&authEmail, "email", "", "account email")
	cmd.Flags().StringVar(&runBackend, "backend", "", "backend base URL")
	return cmd
}

func runLoginCmd(cmd *cobra.Command, _ []string) error {
	return runAuthCmd(cmd, func(ctx context.Context, client *api.Client, password string) (model.TokenPair, error) {
		return client.Login(ctx, authEmail, password)
	})
}

func newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store auth tokens",
		Args:  cobra.NoArgs,
		RunE:  runRegisterCmd,
	}
	cmd.Flags().StringVar(&authName, "name", "", "display name")
	cmd.Flags().StringVar(&authEmail, "email", "", "account email")
	cmd.Flags().StringVar(&runBackend, "backend", "", "backend base URL")
	return cmd
}

func runRegisterCmd(cmd *cobra.Command, _ []string) error {
	if strings.TrimSpace(authName) == "" {
		return fmt.Errorf("--name must not be empty")
	}
	return runAuthCmd(cmd, func(ctx context.Context, client *api.Client, password string) (model.TokenPair, error) {
		return client.Register(ctx, authName, authEmail, password)
	})
}

func runAuthCmd(cmd *cobra.Command, auth func(context.Context, *api.Client, string) (model.TokenPair, error)) error {
	if strings.TrimSpace(authEmail) == "" {
		return fmt.Errorf("--email must not be empty")
	}
	config.LoadEnv()
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	state, err := store.LoadState(config.DefaultStatePath())
	if err != nil {
		return err
	}
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	client := api.NewClient(resolveBackendURL(cmd, fileCfg), api.WithSessionID(state.SessionID))
	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()
	tokens, err := auth(ctx, client, password)
	if err != nil {
		return err
	}

	state.Tokens = tokens
	if err := store.SaveState(config.DefaultStatePath(), state); err != nil {
		return err
	}
	logErrln("Signed in.")
	return nil
}

func readPassword(prompt string) (string, error) {
	logErrf("%s", prompt)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	logErrln("")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimSpace(string(data))
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List interview types",
		Args:  cobra.NoArgs,
		RunE:  runTypesCmd,
	}
}

func runTypesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	for _, t := range config.InterviewTypes(fileCfg.Types) {
		line := fmt.Sprintf("%-16s %2d min, %d questions, %ds per answer", t.Name, t.DurationMinutes, t.QuestionCount, question.BudgetSeconds(t))
		if len(t.Skills) > 0 {
			line += "  [" + strings.Join(t.Skills, ", ") + "]"
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newBanksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List local question banks",
		Args:  cobra.NoArgs,
		RunE:  runBanksCmd,
	}
}

func runBanksCmd(cmd *cobra.Command, _ []string) error {
	names, err := bank.List(config.DefaultBankDir())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		logErrf("No question banks found. Add JSON files under %s\n", config.DefaultBankDir())
		return nil
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# prepterm configuration
# Uncomment a value to enable it. CLI flags override config values.

[backend]
# url = %q
# timeout-seconds = 60

[interview]
# type = %q          # Interview type (see: prepterm types)
# duration = 30      # Interview length in minutes
# questions = 6      # Number of questions
# voice = false      # Enable voice answers
# read-aloud = false # Read each question aloud

[voice]
# capture-command = "hear --live" # Streaming speech-to-text command
# speak-command = "say"           # Text-to-speech command

[profile]
# region = "EU"
# experience-years = 5

# Custom interview types. Same-named entries override built-ins.
# [[types]]
# name = "sales"
# duration = 25
# questions = 5
# skills = ["Negotiation", "Communication"]
`,
		config.DefaultBackendURL,
		defaultType,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
