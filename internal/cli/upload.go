package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pierrotdelalune/actions-upload-release-asset/internal/logger"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/auth"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/config"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/errors"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/fsutil"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/github"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/orchestrator"
)

// uploadInputs carries the resolved inputs of one upload invocation.
// Resolution order per value: flag, then INPUT_* environment variable
// (GitHub Actions convention), then config file where applicable.
type uploadInputs struct {
	UploadURL   string
	AssetPath   string
	AssetName   string
	AssetLabel  string
	ContentType string
	Token       string
	Overwrite   bool
	Concurrency int
}

// NewUploadCmd creates the upload command.
func NewUploadCmd() *cobra.Command {
	var in uploadInputs

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload assets to a release",
		Long: `Upload one or more local files as assets of an existing GitHub release.

The asset path is a glob pattern; every matching file is uploaded under its
canonicalized base name. Name collisions with already-published assets fail
the run unless --overwrite is set, in which case the colliding assets are
deleted first. Inputs may also be supplied as INPUT_* environment variables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpload(cmd.Context(), in)
		},
	}

	cmd.Flags().StringVar(&in.UploadURL, "upload-url", "", "Templated upload URL of the release (from the release API)")
	cmd.Flags().StringVar(&in.AssetPath, "asset-path", "", "Glob pattern selecting the files to upload")
	cmd.Flags().StringVar(&in.AssetName, "asset-name", "", "Published asset name override (single-file uploads only)")
	cmd.Flags().StringVar(&in.AssetLabel, "asset-label", "", "Display label for the uploaded assets")
	cmd.Flags().StringVar(&in.ContentType, "asset-content-type", "", "Content type for every uploaded file (default: inferred)")
	cmd.Flags().StringVar(&in.Token, "token", "", "API token (defaults to GITHUB_TOKEN)")
	cmd.Flags().BoolVar(&in.Overwrite, "overwrite", false, "Delete existing assets with colliding names before uploading")
	cmd.Flags().IntVar(&in.Concurrency, "concurrency", 0, "Max parallel uploads (0=config default)")

	return cmd
}

func runUpload(ctx context.Context, in uploadInputs) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.InitLogger(cfg.Settings.LogLevel)

	in.applyActionEnv()
	in.applyConfig(cfg)

	if in.UploadURL == "" {
		return errors.Wrap(errors.ErrConfigValidation, "upload-url is required")
	}
	if in.AssetPath == "" {
		return errors.Wrap(errors.ErrConfigValidation, "asset-path is required")
	}
	if in.Token == "" {
		return errors.ErrTokenMissing
	}

	client := github.NewClient(cfg.Settings.APIBaseURL, auth.BearerAuth{Token: in.Token}, cfg.Settings.HTTPTimeout)

	hooks := orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
		switch e.Phase {
		case "uploading", "deleting":
			logger.Info(e.Phase, logger.Fields{"asset": e.Name, "detail": e.Msg})
		default:
			logger.Debug(e.Phase, logger.Fields{"detail": e.Msg})
		}
	}}

	orch := orchestrator.New(client, client, client, fsutil.GlobDiscoverer{}, hooks)

	result, err := orch.Run(ctx, orchestrator.UploadOptions{
		UploadURL:   in.UploadURL,
		AssetPath:   in.AssetPath,
		AssetName:   in.AssetName,
		AssetLabel:  in.AssetLabel,
		ContentType: in.ContentType,
		Overwrite:   in.Overwrite,
		Concurrency: in.Concurrency,
	})
	if err != nil {
		return err
	}

	logger.Success("assets uploaded", logger.Fields{"count": len(result.BrowserDownloadURLs)})
	fmt.Println(result.Joined())

	return writeActionOutput("browser_download_urls", result.Joined())
}

// applyActionEnv fills unset inputs from INPUT_* environment variables.
func (in *uploadInputs) applyActionEnv() {
	if in.UploadURL == "" {
		in.UploadURL = actionInput("upload-url")
	}
	if in.AssetPath == "" {
		in.AssetPath = actionInput("asset-path")
	}
	if in.AssetName == "" {
		in.AssetName = actionInput("asset-name")
	}
	if in.AssetLabel == "" {
		in.AssetLabel = actionInput("asset-label")
	}
	if in.ContentType == "" {
		in.ContentType = actionInput("asset-content-type")
	}
	if in.Token == "" {
		in.Token = actionInput("github-token")
	}
	if !in.Overwrite {
		if v, err := strconv.ParseBool(actionInput("overwrite")); err == nil {
			in.Overwrite = v
		}
	}
}

// applyConfig fills the remaining unset inputs from the config file and its
// resolved environment (GITHUB_TOKEN, max_concurrent_uploads).
func (in *uploadInputs) applyConfig(cfg *config.Config) {
	if in.Token == "" {
		in.Token = cfg.Settings.Token
	}
	if in.Concurrency <= 0 {
		in.Concurrency = cfg.Settings.MaxConcurrent
	}
}
