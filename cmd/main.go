package main

import (
	"fmt"
	"generate-reel-api/application/services"
	"generate-reel-api/config"
	"generate-reel-api/infrastructure/adapters"
	"generate-reel-api/infrastructure/gin_interface/controllers"
	"generate-reel-api/middleware"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, relying on process environment")
	}

	gptConfig, err := config.GetGptConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gpt config")
	}

	imageConfig, err := config.GetImageConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get image config")
	}

	runwayConfig, err := config.GetRunwayConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get runway config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	pollyConfig := config.GetPollyConfig()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	s3Client := s3.New(sess)
	pollyClient := polly.New(sess)
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	mediaStore := adapters.NewS3MediaStore(s3Client, s3Config, contentFetcher)

	scriptGenerator := adapters.NewGptScriptGenerator(gptConfig, zeroLogger)
	speechSynthesizer := adapters.NewPollySpeechSynthesizer(zeroLogger, pollyClient, pollyConfig, mediaStore)
	imageGenerator := adapters.NewOpenaiImageGenerator(zeroLogger, imageConfig, mediaStore)
	videoSynthesizer := adapters.NewRunwayVideoSynthesizer(contentFetcher, runwayConfig, zeroLogger)
	audioMerger := adapters.NewFFmpegAudioMerger(contentFetcher, mediaStore, zeroLogger)
	jobTracker := adapters.NewDynamoJobTracker(zeroLogger, dynamoClient, dynamoConfig)

	reelGenerator := services.NewReelPipelineOrchestrator(zeroLogger, workerPool, scriptGenerator,
		speechSynthesizer, imageGenerator, videoSynthesizer, audioMerger, mediaStore, jobTracker)

	reelFeed := services.NewReelFeedProvider(zeroLogger, workerPool, mediaStore)

	reelsController := controllers.NewReelsController(zeroLogger, reelGenerator, reelFeed)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.CORSMiddleware())

	reelsController.RegisterRoutes(router)

	if err := router.Run(":8080"); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
