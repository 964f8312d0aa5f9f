package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"pulse-share/internal/adapters/remote"
	"pulse-share/internal/catalog"
	"pulse-share/internal/compose"
	"pulse-share/internal/domain"
	"pulse-share/internal/usecases"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var clipboardWriteAll = clipboard.WriteAll

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sharegen",
		Short:        "Generate social posts for music, videos, podcasts, radio, gaming and live streams",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newPlatformsCmd())
	return root
}

type generateOptions struct {
	contentType string
	fields      domain.ContentFields
	listeners   int
	platform    string
	asJSON      bool
	copy        bool
	remoteURL   string
	token       string
	timeout     time.Duration
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate posts for every supported platform",
		Example: `  sharegen generate --type music --title "Digital Dreams" --artist Nova
  sharegen generate --type radio --title "Late Night" --station "Pulse FM" --listeners 1250 --platform twitter --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("listeners") {
				if opts.listeners < 0 {
					return fmt.Errorf("--listeners must not be negative")
				}
				n := opts.listeners
				opts.fields.ListenerCount = &n
			}
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.contentType, "type", "t", string(domain.Music), "content type: music, video, podcast, radio, gaming, live_stream")
	f.StringVar(&opts.fields.ID, "id", "", "content id")
	f.StringVar(&opts.fields.Title, "title", "", "content title")
	f.StringVar(&opts.fields.Description, "description", "", "content description")
	f.StringVar(&opts.fields.ArtistName, "artist", "", "artist name (music)")
	f.StringVar(&opts.fields.Creator, "creator", "", "creator name")
	f.StringVar(&opts.fields.StationName, "station", "", "station name (radio)")
	f.StringVar(&opts.fields.CurrentTrack, "track", "", "current track (radio)")
	f.IntVar(&opts.listeners, "listeners", 0, "listener count (radio)")
	f.StringVar(&opts.fields.Game, "game", "", "game name")
	f.StringVar(&opts.fields.StreamID, "stream-id", "", "stream id (live_stream)")
	f.StringVarP(&opts.platform, "platform", "p", "", "only print this platform")
	f.BoolVar(&opts.asJSON, "json", false, "print JSON")
	f.BoolVar(&opts.copy, "copy", false, "copy the post for --platform to the clipboard")
	f.StringVar(&opts.remoteURL, "remote-url", "", "remote generator base URL")
	f.StringVar(&opts.token, "token", "", "bearer token for the remote generator")
	f.DurationVar(&opts.timeout, "timeout", usecases.DefaultRemoteTimeout, "remote generator timeout")
	return cmd
}

func runGenerate(ctx context.Context, out, errOut io.Writer, opts *generateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.copy && opts.platform == "" {
		return fmt.Errorf("--copy needs --platform")
	}

	ct := domain.ContentType(opts.contentType)
	var platform domain.PlatformID
	if opts.platform != "" {
		platform = domain.PlatformID(opts.platform)
		if _, err := catalog.Profile(platform); err != nil {
			return err
		}
	}

	var generator usecases.RemoteGenerator
	if opts.remoteURL != "" {
		generator = remote.NewClient(remote.Config{BaseURL: opts.remoteURL})
	}
	uc := usecases.NewGenerateShareUseCase(generator, compose.NewDefaultAssembler(), opts.timeout)

	set, source, err := uc.Execute(ctx, ct, domain.NewContentItem(ct, opts.fields), opts.token)
	if err != nil {
		return err
	}

	if platform != "" {
		content, ok := set[platform]
		if !ok {
			return fmt.Errorf("%s is not offered for %s content", platform, ct)
		}
		set = domain.ShareSet{platform: content}
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			ContentType domain.ContentType `json:"content_type"`
			Source      domain.Source      `json:"source"`
			Content     domain.ShareSet    `json:"content"`
		}{ct, source, set}); err != nil {
			return err
		}
	} else {
		printSet(out, ct, set)
	}

	if opts.copy {
		if err := clipboardWriteAll(set[platform].Text); err != nil {
			fmt.Fprintf(errOut, "Copy failed: %v\n", err)
			return err
		}
		fmt.Fprintf(errOut, "Copied %s post to clipboard\n", catalog.MustProfile(platform).DisplayName)
	}
	return nil
}

// printSet writes each post under a header, in catalog order.
func printSet(out io.Writer, ct domain.ContentType, set domain.ShareSet) {
	order := catalog.SupportedPlatforms(ct)
	for _, id := range order {
		content, ok := set[id]
		if !ok {
			continue
		}
		profile := catalog.MustProfile(id)
		flag := ""
		if content.IsOverLimit {
			flag = "  OVER LIMIT"
		}
		fmt.Fprintf(out, "== %s (%d/%d)%s ==\n%s\n\n", profile.DisplayName, content.CharacterCount, profile.MaxChars, flag, content.Text)
	}
}

func newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List platforms and their limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range catalog.Profiles() {
				fmt.Fprintf(out, "%-10s %-12s max %5d chars, %2d hashtags, %s\n", p.ID, p.DisplayName, p.MaxChars, p.HashtagLimit, p.ImageAspect)
			}
			return nil
		},
	}
}
