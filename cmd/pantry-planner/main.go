package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pantry-planner/internal/category"
	"pantry-planner/internal/clipper"
	"pantry-planner/internal/config"
	"pantry-planner/internal/database"
	"pantry-planner/internal/expiry"
	"pantry-planner/internal/inventory"
	"pantry-planner/internal/logging"
	"pantry-planner/internal/match"
	"pantry-planner/internal/planner"
	"pantry-planner/internal/recipe"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config.NewFromEnv()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rootCmd := &cobra.Command{
		Use:           "pantry-planner",
		Short:         "Pantry tracking and recipe suggestions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "pantry database path")
	rootCmd.PersistentFlags().StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "recipe catalog path")

	rootCmd.AddCommand(pantryCmd(cfg))
	rootCmd.AddCommand(importCmd(cfg, logger))
	rootCmd.AddCommand(suggestCmd(cfg, logger))

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func openRepository(cfg *config.Config) (*database.DB, inventory.Repository, error) {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	return db, inventory.NewRepository(db.SQL, category.New()), nil
}

func pantryCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pantry",
		Short: "Manage pantry items",
	}
	cmd.AddCommand(pantryAddCmd(cfg))
	cmd.AddCommand(pantryListCmd(cfg))
	cmd.AddCommand(pantryRemoveCmd(cfg))
	return cmd
}

func pantryAddCmd(cfg *config.Config) *cobra.Command {
	var (
		qty      float64
		unit     string
		expiryAt string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add an item to the pantry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			item := inventory.Item{
				Name:      strings.Join(args, " "),
				Unit:      unit,
				Remaining: qty,
			}
			if expiryAt != "" {
				date, err := time.Parse("2006-01-02", expiryAt)
				if err != nil {
					return fmt.Errorf("invalid expiry date %q, expected YYYY-MM-DD", expiryAt)
				}
				item.Expiry = &date
			}

			created, err := repo.Create(cmd.Context(), item)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s, %.2f %s)\n", created.Name, created.Category, created.Remaining, created.Unit)
			return nil
		},
	}

	cmd.Flags().Float64Var(&qty, "qty", 1, "quantity on hand")
	cmd.Flags().StringVar(&unit, "unit", "", "unit (g, kg, ml, l, pcs, ...)")
	cmd.Flags().StringVar(&expiryAt, "expiry", "", "expiry date (YYYY-MM-DD)")
	return cmd
}

func pantryListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pantry items",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			items, err := repo.FindAll(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("Pantry is empty.")
				return nil
			}

			today := time.Now()
			for _, item := range items {
				line := fmt.Sprintf("%-10s  %-25s %8.2f %-5s %s", item.ID[:8], item.Name, item.Remaining, item.Unit, item.Category)
				status, daysLeft := expiry.Compute(item.Expiry, today)
				switch {
				case status == expiry.StatusExpired:
					line += "  [expired]"
				case status == expiry.StatusSoon && daysLeft != nil:
					line += fmt.Sprintf("  [expires in %dd]", *daysLeft)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func pantryRemoveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove a pantry item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := repo.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}

func importCmd(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file-or-url]",
		Short: "Import recipes into the catalog from a JSON file or a recipe page URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := recipe.NewStore(cfg.CatalogPath)
			if err != nil {
				return err
			}

			source := args[0]
			var recipes []recipe.Recipe

			if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
				rec, err := clipper.New().ClipURL(cmd.Context(), source)
				if err != nil {
					return err
				}
				recipes = []recipe.Recipe{*rec}
			} else {
				data, err := os.ReadFile(source)
				if err != nil {
					return err
				}
				if err := json.Unmarshal(data, &recipes); err != nil {
					return fmt.Errorf("parsing %s: %w", source, err)
				}
			}

			if err := store.Add(cmd.Context(), recipes...); err != nil {
				return err
			}

			logger.Info("imported recipes", zap.Int("count", len(recipes)), zap.String("source", source))
			for _, rec := range recipes {
				fmt.Printf("Imported %q (%d ingredients)\n", rec.Title, len(rec.Ingredients))
			}
			return nil
		},
	}
}

func suggestCmd(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	var (
		days       int
		maxTime    int
		tags       []string
		difficulty string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest recipes and a meal plan from the current pantry",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			store, err := recipe.NewStore(cfg.CatalogPath)
			if err != nil {
				return err
			}

			items, err := repo.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading pantry: %w", err)
			}

			scorer := planner.NewScorer(match.New(category.New()))
			suggester := planner.NewSuggester(store, scorer, logger)
			suggester.SetTopN(cfg.TopN)

			prefs := planner.Preferences{
				MaxCookTime:   maxTime,
				PreferredTags: tags,
				Difficulty:    difficulty,
			}
			if days <= 0 {
				days = cfg.PlanningDays
			}

			result, err := suggester.Generate(cmd.Context(), items, prefs, days)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "plan length in days (default from config)")
	cmd.Flags().IntVar(&maxTime, "max-time", 0, "preferred maximum cook time in minutes")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "preferred recipe tags")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "preferred difficulty (easy, medium, hard)")
	return cmd
}
