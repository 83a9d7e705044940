package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"verse-audio-api/application/ports/outbound"
	"verse-audio-api/application/services"
	"verse-audio-api/config"
	"verse-audio-api/domain"
	"verse-audio-api/infrastructure/adapters"
	"verse-audio-api/infrastructure/gin_interface/controllers"
	"verse-audio-api/middleware"
)

func main() {
	openAIConfig, err := config.GetOpenAIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get openai config")
	}

	elevenLabsConfig, err := config.GetElevenLabsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get eleven labs config")
	}

	speechifyConfig, err := config.GetSpeechifyConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get speechify config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	synthesisConfig, err := config.GetSynthesisConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get synthesis config")
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		Config:            aws.Config{Region: aws.String(s3Config.Region)},
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
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	synthesizers := map[domain.Provider]outbound.SpeechSynthesizerPort{
		domain.OpenAIProvider:     adapters.NewOpenAISynthesizer(contentFetcher, openAIConfig, zeroLogger),
		domain.ElevenLabsProvider: adapters.NewElevenLabsSynthesizer(contentFetcher, elevenLabsConfig, zeroLogger),
		domain.SpeechifyProvider:  adapters.NewSpeechifySynthesizer(contentFetcher, speechifyConfig, zeroLogger),
	}

	audioStore := adapters.NewS3AudioStore(s3Client, s3Config, zeroLogger)

	cacheIndex := adapters.NewDynamoCacheIndex(zeroLogger, dynamoClient, dynamoConfig)

	chunker := services.NewTextChunker()

	voiceResolver := services.NewVoiceResolver()

	orchestrator := services.NewSynthesisOrchestrator(zeroLogger, workerPool, chunker, voiceResolver,
		synthesizers, audioStore, cacheIndex, synthesisConfig.ChunkDelay, synthesisConfig.ProviderTimeout)

	synthesisController := controllers.NewSynthesisController(zeroLogger, orchestrator)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.RequestLogger(zeroLogger))

	synthesisController.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = router.Run(":" + port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
