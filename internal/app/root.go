package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/atelierctl/internal/config"
	"github.com/blackwell-systems/atelierctl/internal/shop"
	"github.com/blackwell-systems/atelierctl/internal/store"
	"github.com/blackwell-systems/atelierctl/internal/tui"
	"github.com/blackwell-systems/atelierctl/internal/util"
	"github.com/blackwell-systems/atelierctl/internal/view"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	shopSvc  *shop.Shop
	announce *store.TermAnnouncer
	renderer *view.Renderer
	registry *view.Registry

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagDataDir       string
)

var appVersion = "dev"

// SetVersion records the build version for the version command.
func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "atelierctl",
	Short: "Een zwart-wit atelierwinkel voor gitaren, gedichten en tekeningen",
	Long: `atelierctl is de winkel van een kunstenaarsatelier: gitaren, gedichten
en tekeningen, alles zwart-wit. De winkelwagen, favorieten en het
beheer leven in lokale opslag.

Run 'atelierctl' zonder argumenten voor het interactieve menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runHub(cmd)
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/atelierctl/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (default: ~/.local/share/atelierctl)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		if flagConfig != "" {
			os.Setenv("ATELIERCTL_CONFIG", flagConfig)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cfg.UI.NoColor {
			color.NoColor = true
		}
		if cfg.UI.NoInteractive && !cmd.Flags().Changed("no-interactive") {
			_ = cmd.Flags().Set("no-interactive", "true")
		}

		dataDir := cfg.Store.DataDir
		if flagDataDir != "" {
			dataDir = config.ExpandHome(flagDataDir)
		}
		if dataDir == "" {
			dataDir = store.DefaultDir()
		}

		announce = store.NewTermAnnouncer(os.Stderr)
		st := store.NewFileStore(dataDir, announce)
		shopSvc = shop.New(st, announce)
		shopSvc.Startup()

		theme := cfg.UI.EffectiveTheme()
		if stored := shopSvc.Theme(); stored != "" {
			theme = stored
		}
		if theme == "" {
			theme = shopSvc.ResolveTheme(tui.HasDarkBackground())
		}
		renderer = view.NewRenderer(theme, shopSvc.A11y())
		registry = buildRegistry()
		return nil
	}

	rootCmd.AddCommand(
		newHomeCmd(),
		newPageCmd(),
		newFavoritesCmd(),
		newCartCmd(),
		newManageCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newThemeCmd(),
		newA11yCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// fail prints a red error and exits 1.
func fail(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.RedString("✗"), fmt.Sprintf(format, a...))
	os.Exit(1)
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

// unlocked reports whether the management surface is open: either a
// stored session or a matching env override.
func unlocked() bool {
	if shopSvc.Unlocked() {
		return true
	}
	return cfg.Shop.AccessOverride != "" && cfg.Shop.AccessOverride == shopSvc.AccessCode()
}

// requireUnlock guards management commands.
func requireUnlock() error {
	if unlocked() {
		return nil
	}
	return fmt.Errorf("beveiligde omgeving — log eerst in met 'atelierctl login'")
}

// runHub launches the interactive hub menu and routes to the selected
// action.
func runHub(cmd *cobra.Command) error {
	badges := view.CountBadges(shopSvc)
	ctx := tui.HubContext{
		BadgeLine: fmt.Sprintf("Winkelwagen: %d · Favorieten: %d", badges.CartCount, badges.FavoritesCount),
		Unlocked:  unlocked(),
		TryUnlock: shopSvc.Login,
	}

	action, err := tui.RunHub(ctx)
	if err != nil {
		return err
	}

	switch action {
	case "home":
		return newHomeCmd().RunE(cmd, nil)
	case "guitars", "drawings", "poems":
		return runPage(action)
	case "favorites":
		return runFavoritesList()
	case "cart":
		return runCartList()
	case "published":
		return runPublishedList()
	case "products":
		return runProductsList()
	case "organizer":
		return runOrganizer()
	case "sales":
		return runSales()
	case "security":
		header("Toegangscode wijzigen")
		fmt.Println("Gebruik: atelierctl manage code --current <oud> --next <nieuw> --confirm <nieuw>")
		return nil
	case "logout":
		shopSvc.Logout()
		ok("Uitgelogd.")
		return nil
	case "quit", "":
		return nil
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}
