package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"commandsite/app"
	"commandsite/browser"
	"commandsite/catalog"
	"commandsite/config"
	"commandsite/faq"
	"commandsite/log"
	"commandsite/ui"
	"commandsite/web"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version    = "0.1.0"
	configFlag string
	dataFlag   string
	cfg        *config.Config

	rootCmd = &cobra.Command{
		Use:   "commandsite",
		Short: "commandsite - browse a bot's commands and FAQ",
		Long:  "Browse a bot's commands and FAQ in the terminal, print them, or serve them as a website.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if configFlag != "" {
				cfg, err = config.LoadFromPath(configFlag)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return err
			}
			if dataFlag != "" {
				cfg.DataSource = dataFlag
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Piped output gets the plain list instead of the TUI.
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return runList(cmd.Context(), cmd.OutOrStdout(), "", "", 0)
			}

			log.Initialize(cfg.LogSettings(), false)
			defer log.Close()
			return app.Run(cmd.Context(), cfg)
		},
	}

	listCategory string
	listSearch   string
	listWidth    int

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print the commands as text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), listCategory, listSearch, listWidth)
		},
	}

	serveAddr string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page and commands reference over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(cfg.LogSettings(), true)
			defer log.Close()

			if serveAddr != "" {
				cfg.HTTP.Addr = serveAddr
			}
			entries, err := faq.Load(cfg.FAQSource)
			if err != nil {
				return err
			}
			index, err := loadIndex(cmd.Context())
			if err != nil {
				// The site still serves the landing page.
				log.ErrorLog.Printf("failed to load commands: %v", err)
				index = nil
			}

			srv, err := web.NewServer(web.ServerConfig{Addr: cfg.HTTP.Addr, Index: index, FAQ: entries})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", cfg.HTTP.Addr)
			return srv.ListenAndServe(cmd.Context())
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Fprintf(out, "Config dir: %s\n", configDir)
			if path := cfg.Path(); path != "" {
				fmt.Fprintf(out, "Config file: %s\n", path)
			} else {
				fmt.Fprintln(out, "Config file: none, using defaults")
			}
			fmt.Fprintf(out, "Log file: %s\n", log.FilePath())
			fmt.Fprintf(out, "Config: %s\n", configJson)
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of commandsite",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "commandsite version %s\n", version)
		},
	}
)

func loadIndex(ctx context.Context) (*catalog.Index, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout.Duration)
	defer cancel()
	return catalog.Load(ctx, &http.Client{}, cfg.DataSource)
}

func runList(ctx context.Context, w io.Writer, category, search string, width int) error {
	index, err := loadIndex(ctx)
	if err != nil {
		return err
	}
	m := browser.New(index)
	m.ApplyFilter(search)
	if category != "" {
		if err := m.SelectCategory(category); err != nil {
			return err
		}
	}
	if width <= 0 {
		width = 60
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
			width = cols
		}
	}
	return ui.WriteList(w, m, width)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to a config file (.toml or .json). Defaults to the config directory.")
	rootCmd.PersistentFlags().StringVar(&dataFlag, "data", "",
		"Commands document to load: a file path or http(s) URL. Defaults to the built-in sample.")

	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only print this category")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only print commands matching this term")
	listCmd.Flags().IntVarP(&listWidth, "width", "w", 0, "Card width (defaults to the terminal width)")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (defaults to http.addr from the config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
