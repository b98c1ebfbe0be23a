package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	catalogx "github.com/nattawoot/maitre/agent/catalog"
	conciergex "github.com/nattawoot/maitre/agent/concierge"
	contractx "github.com/nattawoot/maitre/agent/contract"
	llmx "github.com/nattawoot/maitre/agent/llm"
	promptx "github.com/nattawoot/maitre/agent/prompt"
	reservationx "github.com/nattawoot/maitre/agent/reservation"
	toolx "github.com/nattawoot/maitre/agent/tool"
	configx "github.com/nattawoot/maitre/pkg/config"
	logx "github.com/nattawoot/maitre/pkg/logger"
	openrouterx "github.com/nattawoot/maitre/pkg/openrouter"
)

type AppConfig struct {
	CatalogPath      string `envconfig:"CATALOG_PATH" split_words:"true" default:"data/restaurants.json"`
	ReservationsPath string `envconfig:"RESERVATIONS_PATH" split_words:"true" default:"data/reservations.json"`
	// PostgresDSN switches reservation persistence from the JSON file to
	// Postgres when set.
	PostgresDSN string `envconfig:"POSTGRES_DSN" split_words:"true"`
	Debug       bool   `envconfig:"DEBUG" split_words:"true" default:"false"`
	PrettyLogs  bool   `envconfig:"PRETTY_LOGS" split_words:"true" default:"false"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("MAITRE")
	logx.Init(logx.Config{Debug: appCfg.Debug, PrettyFormat: appCfg.PrettyLogs})

	ctx := context.Background()

	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	apiClient := openrouterx.NewClient(*openRouterCfg)
	if apiClient == nil {
		log.Fatal().Msg("openrouter api key is not configured")
	}

	completer, err := llmx.New(apiClient, openRouterCfg.Model, openRouterCfg.MaxCompletionToken)
	if err != nil {
		log.Fatal().Err(err).Msg("build completion client")
	}

	reader, err := catalogx.NewFileReader(appCfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("build catalog reader")
	}
	// A missing catalog is a configuration error; fail at startup, not on
	// the first tool call.
	if _, err := reader.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("load restaurant catalog")
	}

	store, closeStore, err := buildStore(ctx, appCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build reservation store")
	}
	defer closeStore()

	tools, err := toolx.NewToolset(reader, store)
	if err != nil {
		log.Fatal().Err(err).Msg("build toolset")
	}

	agent, err := conciergex.New(completer, tools, promptx.Unified())
	if err != nil {
		log.Fatal().Err(err).Msg("build concierge")
	}

	runChatLoop(ctx, agent)
}

func buildStore(ctx context.Context, cfg *AppConfig) (reservationx.Store, func(), error) {
	if dsn := strings.TrimSpace(cfg.PostgresDSN); dsn != "" {
		store, err := reservationx.NewBunStore(reservationx.BunConfig{DSN: dsn})
		if err != nil {
			return nil, nil, err
		}
		if err := store.Init(ctx); err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}

	store, err := reservationx.NewFileStore(cfg.ReservationsPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}

// runChatLoop owns the conversation history: after every step it records
// both the user and the assistant turn, per the agent's contract.
func runChatLoop(ctx context.Context, agent *conciergex.Concierge) {
	fmt.Println("Maitre restaurant concierge. Type a message, or \"exit\" to quit.")

	var history []contractx.Turn
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("you> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return
		}
		if line == "" {
			fmt.Print("you> ")
			continue
		}

		step, err := agent.RunStep(ctx, line, history)
		if err != nil {
			log.Error().Err(err).Msg("agent step failed")
			fmt.Print("you> ")
			continue
		}

		history = append(history,
			contractx.Turn{Role: contractx.RoleUser, Content: line},
			contractx.Turn{Role: contractx.RoleAssistant, Content: step.Reply},
		)
		fmt.Println("maitre> " + step.Reply)
		fmt.Print("you> ")
	}

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("read input")
	}
}
