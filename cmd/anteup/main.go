package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/pterm/pterm"

	"github.com/fadedpez/anteup/internal/config"
	"github.com/fadedpez/anteup/internal/discord"
	"github.com/fadedpez/anteup/internal/logging"
	runrepo "github.com/fadedpez/anteup/pkg/repositories/run"
	"github.com/fadedpez/anteup/pkg/scheduler"
	"github.com/fadedpez/anteup/pkg/services/statistics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))

	repo, esRepo := buildRepository(cfg, logger)
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close storage: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// SIGINT/SIGTERM stop a running simulation batch at the next run
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	if esRepo != nil {
		maintenance := scheduler.NewElasticsearchMaintenanceScheduler(esRepo)
		maintenance.Start(ctx)
		defer maintenance.Stop()
	}

	statsService := statistics.NewService(repo)

	var notifier *discord.Notifier
	if cfg.NotificationsEnabled() {
		notifier, err = discord.NewNotifier(cfg.DiscordToken, cfg.DiscordChannelID)
		if err != nil {
			logger.LogError(err)
			logger.Warn("Continuing without Discord run reports")
		} else {
			logger.Info("Discord run reports enabled for channel %s", cfg.DiscordChannelID)
			defer notifier.Close()
		}
	}

	printTitle()

	for {
		choice, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("Main menu").
			WithOptions([]string{"New run", "Simulate runs", "Leaderboard", "Recent runs", "Statistics", "Quit"}).
			Show()

		switch choice {
		case "New run":
			playRun(ctx, cfg, logger, statsService, notifier)
		case "Simulate runs":
			simulateRuns(ctx, cfg, logger, statsService, notifier)
		case "Leaderboard":
			showLeaderboard(ctx, statsService)
		case "Recent runs":
			showRecentRuns(ctx, statsService)
		case "Statistics":
			showStatistics(ctx, statsService)
		case "Quit":
			pterm.Info.Println("See you at the next ante.")
			return
		}
	}
}

// buildRepository wires the configured storage backend, falling back to
// in-memory storage when a persistent store fails to open. The second
// return value is non-nil only when Elasticsearch archiving is active.
func buildRepository(cfg *config.Config, logger *logging.Logger) (runrepo.Repository, *runrepo.ElasticsearchRepository) {
	var repo runrepo.Repository
	switch cfg.StorageBackend {
	case "sqlite":
		sqliteRepo, err := runrepo.NewSQLiteRepository(cfg.DatabasePath)
		if err != nil {
			logger.Error("Failed to initialize SQLite storage: %v", err)
			logger.Warn("Falling back to in-memory storage, runs will not persist")
			repo = runrepo.NewMemoryRepository()
		} else {
			logger.Info("Using SQLite storage at %s", cfg.DatabasePath)
			repo = sqliteRepo
		}
	default:
		logger.Info("Using in-memory storage, runs will not persist")
		repo = runrepo.NewMemoryRepository()
	}

	if !cfg.ElasticEnabled {
		return repo, nil
	}

	esRepo, err := runrepo.NewElasticsearchRepository(repo, &runrepo.ElasticsearchConfig{
		URL:             cfg.ElasticURL,
		Username:        cfg.ElasticUsername,
		Password:        cfg.ElasticPassword,
		IndexPrefix:     cfg.ElasticIndexPrefix,
		ArchivePath:     filepath.Join(cfg.DataDir, "archives"),
		RetentionPeriod: time.Duration(cfg.RetentionDays) * 24 * time.Hour,
	})
	if err != nil {
		logger.Error("Failed to initialize Elasticsearch archiving: %v", err)
		logger.Warn("Continuing without Elasticsearch archiving")
		return repo, nil
	}
	logger.Info("Elasticsearch archiving enabled at %s", cfg.ElasticURL)
	return esRepo, esRepo
}

func showLeaderboard(ctx context.Context, statsService *statistics.Service) {
	leaderboard, err := statsService.GetRunLeaderboard(ctx, 1, 10)
	if err != nil {
		pterm.Error.Printfln("Could not load the leaderboard: %v", err)
		return
	}
	if leaderboard.TotalRuns == 0 {
		pterm.Info.Println("No completed runs yet.")
		return
	}

	table := pterm.TableData{{"Rank", "Best hand", "Score", "Ante", "Result", "Jokers"}}
	for _, r := range leaderboard.Runs {
		rank := strconv.Itoa(r.Rank)
		if r.IsTopScore {
			rank += " *"
		}
		table = append(table, []string{
			rank,
			r.BestHandType,
			strconv.FormatInt(r.BestHandScore, 10),
			strconv.Itoa(r.AnteReached),
			runResult(r.Won),
			strings.Join(r.JokerTypes, ", "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(table).Render()
	pterm.Printfln("Page %d of %d, %d runs total", leaderboard.CurrentPage, leaderboard.TotalPages, leaderboard.TotalRuns)
}

func showRecentRuns(ctx context.Context, statsService *statistics.Service) {
	runs, err := statsService.GetRecentRuns(ctx, 10)
	if err != nil {
		pterm.Error.Printfln("Could not load recent runs: %v", err)
		return
	}
	if len(runs) == 0 {
		pterm.Info.Println("No completed runs yet.")
		return
	}

	table := pterm.TableData{{"Completed", "Result", "Ante", "Best hand", "Score", "Money"}}
	for _, r := range runs {
		table = append(table, []string{
			r.CompletedAt.Format("2006-01-02 15:04"),
			runResult(r.Won),
			strconv.Itoa(r.AnteReached),
			r.BestHandType,
			strconv.FormatInt(r.BestHandScore, 10),
			"$" + strconv.FormatInt(r.FinalMoney, 10),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(table).Render()
}

func showStatistics(ctx context.Context, statsService *statistics.Service) {
	stats, err := statsService.GetRunStatistics(ctx)
	if err != nil {
		pterm.Error.Printfln("Could not load statistics: %v", err)
		return
	}
	if stats.TotalRuns == 0 {
		pterm.Info.Println("No completed runs yet.")
		return
	}

	info := pterm.Sprintfln("Runs: %d (%d won, %d lost)", stats.TotalRuns, stats.Wins, stats.Losses)
	info += pterm.Sprintfln("Win rate: %.1f%%", stats.WinRate())
	info += pterm.Sprintfln("Best hand score: %d", stats.BestScore)
	info += pterm.Sprintf("Average ante reached: %.1f", stats.AvgAnte)
	pterm.Println(displayBox().WithTitle(pterm.LightYellow("|STATISTICS|")).WithTitleTopCenter().Sprint(info))
}

func runResult(won bool) string {
	if won {
		return "WIN"
	}
	return "loss"
}
