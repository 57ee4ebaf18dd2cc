// Seeds the DynamoDB tables with a demo event: participants, criteria,
// a couple of award rules and judge accounts. Intended for staging and
// local demos, never production.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"github.com/kultoura/backend/awards"
	"github.com/kultoura/backend/conf"
	"github.com/kultoura/backend/criteria"
	"github.com/kultoura/backend/event"
	"github.com/kultoura/backend/user"
)

func main() {
	participantCount := flag.Int("participants", 8, "number of participants to create")
	judgeCount := flag.Int("judges", 3, "number of judge accounts to create")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}
	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	configPath := os.Getenv("KULTOURA_CONFIG")
	if configPath == "" {
		configPath = "config.toml"
	}
	cfg, err := conf.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		slog.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	userSrvc := user.NewUserSrvc(
		user.NewDynamoDbUserTable(ddbClient, cfg.UsersTable),
		[]byte(jwtKey))
	eventSrvc := event.NewEventSrvc(
		event.NewDynamoDbEventTable(ddbClient, cfg.EventsTable), nil)
	criteriaSrvc := criteria.NewCriteriaSrvc(
		criteria.NewDynamoDbCriteriaTable(ddbClient, cfg.CriteriaTable))
	awardSrvc := awards.NewAwardSrvc(
		awards.NewDynamoDbAwardsTable(ddbClient, cfg.AwardsTable),
		criteriaSrvc)

	ev, err := eventSrvc.CreateEvent(ctx, &event.CreateEventParams{
		Title:       fmt.Sprintf("%s Cultural Festival", gofakeit.City()),
		Description: gofakeit.Sentence(10),
		Category:    "Cultural Dance",
		Venue:       fmt.Sprintf("%s Auditorium", gofakeit.LastName()),
		JudgingMode: event.ModeSequential,
	})
	if err != nil {
		slog.Error("failed to create event", "error", err)
		os.Exit(1)
	}
	slog.Info("created event", "event_id", ev.ID, "title", ev.Title)

	for i := 0; i < *participantCount; i++ {
		name := fmt.Sprintf("%s %s Dance Troupe", gofakeit.Adjective(), gofakeit.City())
		if _, err := eventSrvc.AddParticipant(ctx, ev.ID, name); err != nil {
			slog.Error("failed to add participant", "name", name, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("added participants", "count", *participantCount)

	_, err = criteriaSrvc.Save(ctx, ev.ID, ev.Title, []criteria.Criterion{
		{ID: "choreography", Name: "Choreography", Description: "Originality and synchronization", PercentageWeight: 40, MaxScore: 100},
		{ID: "costume_props", Name: "Costume and Props", Description: "Authenticity of attire and props", PercentageWeight: 30, MaxScore: 100},
		{ID: "stage_presence", Name: "Stage Presence", Description: "Energy and audience connection", PercentageWeight: 30, MaxScore: 100},
	})
	if err != nil {
		slog.Error("failed to save criteria", "error", err)
		os.Exit(1)
	}

	_, err = awardSrvc.Add(ctx, ev.ID, awards.Award{
		Name:             "Best in Choreography Award",
		Description:      "Highest average on the choreography criterion",
		Icon:             "Star",
		Type:             awards.TypeExisting,
		BasedOnCriterion: "choreography",
	})
	if err != nil {
		slog.Error("failed to add award", "error", err)
		os.Exit(1)
	}
	_, err = awardSrvc.Add(ctx, ev.ID, awards.Award{
		Name:                 "Crowd Favorite Award",
		Description:          "Judged on its own dedicated criterion",
		Icon:                 "Crown",
		Type:                 awards.TypeNew,
		CriterionName:        "Crowd Appeal",
		CriterionDescription: "How strongly the performance resonated with the audience",
	})
	if err != nil {
		slog.Error("failed to add award", "error", err)
		os.Exit(1)
	}

	for i := 0; i < *judgeCount; i++ {
		fullName := gofakeit.Name()
		email := fmt.Sprintf("judge%d@kultoura.local", i+1)
		_, err := userSrvc.Register(ctx, user.RegisterParams{
			Email:    email,
			FullName: &fullName,
			Password: "kultoura-demo",
			Role:     user.RoleJudge,
		})
		if err != nil {
			slog.Error("failed to register judge", "email", email, "error", err)
			os.Exit(1)
		}
		slog.Info("registered judge", "email", email)
	}

	slog.Info("seed complete", "event_id", ev.ID)
}
