package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/kultoura/backend/awards"
	"github.com/kultoura/backend/conf"
	"github.com/kultoura/backend/criteria"
	"github.com/kultoura/backend/event"
	"github.com/kultoura/backend/http"
	"github.com/kultoura/backend/metrics"
	"github.com/kultoura/backend/results"
	"github.com/kultoura/backend/s3bucket"
	"github.com/kultoura/backend/scoring"
	"github.com/kultoura/backend/user"
)

func main() {
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

	var posterBucket *s3bucket.S3Bucket
	if cfg.PosterBucket != "" {
		posterBucket, err = s3bucket.NewS3Bucket(cfg.AWSRegion, cfg.PosterBucket)
		if err != nil {
			slog.Error("failed to init poster bucket", "error", err)
			os.Exit(1)
		}
	}
	var exportBucket *s3bucket.S3Bucket
	if cfg.ExportBucket != "" {
		exportBucket, err = s3bucket.NewS3Bucket(cfg.AWSRegion, cfg.ExportBucket)
		if err != nil {
			slog.Error("failed to init export bucket", "error", err)
			os.Exit(1)
		}
	}

	var scoreFeed *scoring.ScoreFeed
	if cfg.ScoreFeedQueueURL != "" {
		scoreFeed = scoring.NewScoreFeed(sqs.NewFromConfig(awsCfg), cfg.ScoreFeedQueueURL)
	}

	userSrvc := user.NewUserSrvc(
		user.NewDynamoDbUserTable(ddbClient, cfg.UsersTable),
		[]byte(jwtKey))
	eventSrvc := event.NewEventSrvc(
		event.NewDynamoDbEventTable(ddbClient, cfg.EventsTable),
		posterBucket)
	criteriaSrvc := criteria.NewCriteriaSrvc(
		criteria.NewDynamoDbCriteriaTable(ddbClient, cfg.CriteriaTable))
	awardSrvc := awards.NewAwardSrvc(
		awards.NewDynamoDbAwardsTable(ddbClient, cfg.AwardsTable),
		criteriaSrvc)
	sessionSrvc := scoring.NewSessionSrvc(
		eventSrvc, criteriaSrvc,
		scoring.NewDynamoDbScoreTable(ddbClient, cfg.ScoresTable),
		scoring.NewInMemDraftStore(),
		scoreFeed)
	resultsSrvc := results.NewResultsSrvc(
		eventSrvc, criteriaSrvc, awardSrvc, sessionSrvc, exportBucket)

	httpServer := http.NewHttpServer(
		userSrvc, eventSrvc, criteriaSrvc, awardSrvc,
		sessionSrvc, resultsSrvc,
		metrics.New(),
		[]byte(jwtKey),
		cfg.CORSAllowedOrigins)

	log.Printf("Starting server on %s", cfg.HTTPAddress)
	err = httpServer.Start(cfg.HTTPAddress)
	log.Printf("Server stopped with error: %v", err)
}
