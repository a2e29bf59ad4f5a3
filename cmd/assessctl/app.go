package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"psychology-assessment-client/internal/app/config"
	"psychology-assessment-client/internal/app/drivers/logger"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/app/services/core/workflow"
	"psychology-assessment-client/internal/app/wiring"
	"psychology-assessment-client/internal/pkg/dto/requests"
	"psychology-assessment-client/internal/pkg/exceptions"
	"psychology-assessment-client/internal/pkg/utils"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

const appName = "assessctl"

// app is built lazily by PersistentPreRunE so every subcommand sees the
// flags it was started with.
type app struct {
	bootstrap *config.Bootstrap
	core      *wiring.Core
	out       io.Writer
}

func rootCmd(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, out io.Writer) *cobra.Command {
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Submit psychological assessments and retrieve their reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.bootstrap = wiring.OpenDrivers(driverConfig, internalConfig, logger.NewZapLogger(driverConfig, internalConfig))
			core, err := wiring.NewCore(cmd.Context(), a.bootstrap)
			if err != nil {
				return err
			}
			a.core = core
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.bootstrap == nil {
				return nil
			}
			return a.bootstrap.Shutdown(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&internalConfig.Backend.BaseUrl, "backend", internalConfig.Backend.BaseUrl, "Analysis backend base URL")
	flags.IntVar(&internalConfig.Backend.RequestTimeoutInSeconds, "timeout", internalConfig.Backend.RequestTimeoutInSeconds, "Request timeout in seconds")
	flags.StringVar(&internalConfig.Credential.Store, "credential-store", internalConfig.Credential.Store, "Credential store (file, redis, memory)")
	flags.StringVar(&internalConfig.Credential.FilePath, "credential-file", internalConfig.Credential.FilePath, "Credential file for the file store")
	flags.StringVar(&driverConfig.Logger.Level, "log-level", driverConfig.Logger.Level, "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.scalesCmd(),
		a.questionsCmd(),
		a.submitCmd(internalConfig),
		a.statusCmd(internalConfig),
		a.reportCmd(),
	)
	return cmd
}

// requestContext tags every invocation with its own request id so the
// transport forwards it as X-Request-ID.
func requestContext(cmd *cobra.Command) context.Context {
	return utils.WithRequestID(cmd.Context(), "")
}

func (a *app) loginCmd() *cobra.Command {
	request := &requests.Login{}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the credential for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateStruct(request); err != nil {
				return exceptions.ErrInputValidation(err)
			}
			identity, err := a.core.AuthUsecase.Login(requestContext(cmd), request)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Logged in as %s\n", displayName(identity))
			return nil
		},
	}
	cmd.Flags().StringVarP(&request.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&request.Password, "password", "p", os.Getenv("ASSESSCTL_PASSWORD"), "Password (defaults to $ASSESSCTL_PASSWORD)")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.core.AuthUsecase.Logout(requestContext(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the user behind the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := a.core.AuthUsecase.CurrentUser(requestContext(cmd))
			if exceptions.IsKind(err, exceptions.KindUnauthorized) {
				fmt.Fprintln(a.out, "Not logged in")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, displayName(identity))
			return nil
		},
	}
}

func (a *app) scalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "List the available assessment scales",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireCredential(); err != nil {
				return err
			}
			scales, err := a.core.ScaleUsecase.ListScales(requestContext(cmd))
			if err != nil {
				return err
			}
			for _, scale := range scales {
				fmt.Fprintf(a.out, "%-12s %s\n", scale.Code, scale.Name)
			}
			return nil
		},
	}
}

func (a *app) questionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions <scale-code>",
		Short: "List the questions of a scale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireCredential(); err != nil {
				return err
			}
			questions, err := a.core.ScaleUsecase.ListQuestions(requestContext(cmd), args[0])
			if err != nil {
				return err
			}
			for _, question := range questions {
				fmt.Fprintf(a.out, "%d. %s\n", question.Number, question.Text)
				for _, option := range question.Options {
					fmt.Fprintf(a.out, "   [%d] %s\n", option.Score, option.Text)
				}
			}
			return nil
		},
	}
}

type submitOptions struct {
	scale     string
	answers   []string
	imagePath string
	watch     bool
	interval  time.Duration
	basicInfo models.BasicInfo
	age       int
	criminal  int
}

func (a *app) submitCmd(internalConfig *config.InternalConfig) *cobra.Command {
	opts := &submitOptions{}
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit an assessment and optionally wait for its report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireCredential(); err != nil {
				return err
			}
			var limiter *rate.Limiter
			if opts.watch {
				var err error
				if limiter, err = pollLimiter(opts.interval); err != nil {
					return err
				}
			}
			ctx := requestContext(cmd)

			_, err := a.core.Workflow.UpdateDraft(ctx, func(draft *models.AssessmentDraft) error {
				return opts.apply(cmd, draft, internalConfig.App.RequestBodyLimitInMegabyte)
			})
			if err != nil {
				return err
			}

			state, err := a.core.Workflow.SubmitDraft(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Submitted %s (%s)\n", state.SubmissionID, state.Status)
			if !opts.watch {
				fmt.Fprintf(a.out, "Run \"%s status\" or \"%s report\" to follow it\n", appName, appName)
				return nil
			}

			state, err = workflow.PollUntilTerminal(ctx, a.core.Workflow, limiter, a.printProgress())
			if err != nil {
				return err
			}
			return a.printOutcome(state)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.scale, "scale", "", "Scale code")
	flags.StringArrayVarP(&opts.answers, "answer", "a", nil, "Answer as N=value, repeatable")
	flags.StringVar(&opts.imagePath, "image", "", "Path to an image attachment")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Poll until the report is ready")
	flags.DurationVar(&opts.interval, "interval", time.Duration(internalConfig.Report.PollIntervalInSeconds)*time.Second, "Poll interval used by --watch")

	flags.StringVar(&opts.basicInfo.Name, "name", "", "Subject name")
	flags.StringVar(&opts.basicInfo.Gender, "gender", "", "Subject gender")
	flags.IntVar(&opts.age, "age", 0, "Subject age")
	flags.StringVar(&opts.basicInfo.IDCard, "id-card", "", "Subject identity card number")
	flags.StringVar(&opts.basicInfo.Occupation, "occupation", "", "Subject occupation")
	flags.StringVar(&opts.basicInfo.CaseName, "case-name", "", "Case name")
	flags.StringVar(&opts.basicInfo.CaseType, "case-type", "", "Case type")
	flags.StringVar(&opts.basicInfo.IdentityType, "identity-type", "", "Identity type")
	flags.StringVar(&opts.basicInfo.PersonType, "person-type", "", "Person type")
	flags.StringVar(&opts.basicInfo.MaritalStatus, "marital-status", "", "Marital status")
	flags.StringVar(&opts.basicInfo.ChildrenInfo, "children-info", "", "Children information")
	flags.IntVar(&opts.criminal, "criminal-record", 0, "Criminal record, 0 or 1")
	flags.StringVar(&opts.basicInfo.HealthStatus, "health-status", "", "Health status")
	flags.StringVar(&opts.basicInfo.PhoneNumber, "phone", "", "Phone number")
	flags.StringVar(&opts.basicInfo.Domicile, "domicile", "", "Domicile")

	return cmd
}

// statusCmd polls the last submission, the one recorded by submit in this
// or an earlier invocation.
func (a *app) statusCmd(internalConfig *config.InternalConfig) *cobra.Command {
	var watch bool
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the report status of the last submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireCredential(); err != nil {
				return err
			}
			if !a.hasSubmission() {
				return nil
			}
			ctx := requestContext(cmd)

			if watch {
				limiter, err := pollLimiter(interval)
				if err != nil {
					return err
				}
				state, err := workflow.PollUntilTerminal(ctx, a.core.Workflow, limiter, a.printProgress())
				if err != nil {
					return err
				}
				return a.printOutcome(state)
			}

			state, err := a.core.Workflow.PollStatus(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s status: %s\n", state.SubmissionID, state.Status)
			if state.IsTerminal() {
				return a.printOutcome(state)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Poll until the report is ready")
	cmd.Flags().DurationVar(&interval, "interval", time.Duration(internalConfig.Report.PollIntervalInSeconds)*time.Second, "Poll interval used by --watch")
	return cmd
}

func (a *app) reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Fetch the report of the last submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireCredential(); err != nil {
				return err
			}
			if !a.hasSubmission() {
				return nil
			}

			state, err := a.core.Workflow.FetchReport(requestContext(cmd))
			if err != nil {
				return err
			}
			if !state.IsTerminal() {
				fmt.Fprintf(a.out, "Report for %s is not ready (%s)\n", state.SubmissionID, state.Status)
				return nil
			}
			return a.printOutcome(state)
		},
	}
}

func (a *app) hasSubmission() bool {
	if a.core.Workflow.State().SubmissionID.IsZero() {
		fmt.Fprintln(a.out, "No submission")
		return false
	}
	return true
}

// pollLimiter allows one status request per interval.
func pollLimiter(interval time.Duration) (*rate.Limiter, error) {
	if interval <= 0 {
		return nil, exceptions.ErrInvalidFlag(nil, "interval")
	}
	return rate.NewLimiter(rate.Every(interval), 1), nil
}

// apply writes the flags into draft. Numbers are only set when their flag
// was given so that 0 stays distinguishable from "not provided".
func (o *submitOptions) apply(cmd *cobra.Command, draft *models.AssessmentDraft, maxImageSizeInMegabyte int) error {
	basicInfo := o.basicInfo
	if cmd.Flags().Changed("age") {
		basicInfo.Age = &o.age
	}
	if cmd.Flags().Changed("criminal-record") {
		basicInfo.CriminalRecord = &o.criminal
	}
	if err := utils.ValidateStruct(basicInfo); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	draft.BasicInfo.Merge(basicInfo)

	if o.scale != "" {
		draft.ScaleType = o.scale
	}

	answers, err := parseAnswers(o.answers)
	if err != nil {
		return err
	}
	for ordinal, answer := range answers {
		draft.SetAnswer(ordinal, answer)
	}

	if o.imagePath != "" {
		attachment, err := readAttachment(o.imagePath, maxImageSizeInMegabyte)
		if err != nil {
			return err
		}
		draft.SetAttachment(attachment)
	}
	return nil
}

// parseAnswers turns N=value pairs into answers keyed by question ordinal.
func parseAnswers(pairs []string) (map[int]string, error) {
	answers := make(map[int]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(value) == "" {
			return nil, exceptions.ErrInvalidFlag(nil, "answer "+pair)
		}
		ordinal, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || ordinal < 1 {
			return nil, exceptions.ErrInvalidFlag(err, "answer "+pair)
		}
		answers[ordinal] = strings.TrimSpace(value)
	}
	return answers, nil
}

func readAttachment(path string, maxImageSizeInMegabyte int) (*models.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageSize(data, maxImageSizeInMegabyte); err != nil {
		return nil, err
	}
	contentType, err := utils.DetectImageType(data)
	if err != nil {
		return nil, err
	}
	return &models.Attachment{
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (a *app) requireCredential() error {
	if !a.core.CredentialStore.IsAuthenticated() {
		return exceptions.ErrNotLoggedIn(nil)
	}
	return nil
}

func (a *app) printProgress() func(state models.ReportState, err error) {
	var last models.ReportStatus
	return func(state models.ReportState, err error) {
		if err != nil {
			if !state.IsTerminal() && workflow.IsRecoverable(err) {
				fmt.Fprintf(a.out, "poll failed, retrying: %s\n", errorDetail(err))
			} else {
				fmt.Fprintf(a.out, "poll failed: %s\n", errorDetail(err))
			}
			return
		}
		if state.Status != last {
			fmt.Fprintf(a.out, "status: %s\n", state.Status)
			last = state.Status
		}
	}
}

// printOutcome prints a terminal state. A failed report is returned as an
// error so the command exits non-zero.
func (a *app) printOutcome(state models.ReportState) error {
	switch {
	case state.Status == models.ReportStatusFailed:
		return exceptions.ErrReportFailed(nil, state.Message)
	case state.Status == models.ReportStatusComplete && state.Report != nil:
		if state.Report.Text != "" {
			fmt.Fprintln(a.out, state.Report.Text)
			return nil
		}
		fmt.Fprintln(a.out, string(state.Report.Raw))
	case state.Message != "":
		fmt.Fprintf(a.out, "%s: %s\n", state.Status, state.Message)
	default:
		fmt.Fprintf(a.out, "%s\n", state.Status)
	}
	return nil
}

func displayName(identity *models.Identity) string {
	if identity == nil {
		return ""
	}
	if identity.User != nil && identity.User.Username != "" {
		return identity.User.Username
	}
	return identity.Subject
}
