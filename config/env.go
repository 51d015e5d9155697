package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

func GetFiberHttpPort() string {
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

func GetFiberListenAddress() string {
	return fmt.Sprintf(":%s", GetFiberHttpPort())
}

// GetUseCaseTimeout bounds every usecase call; database round-trips are the
// only suspension points besides the AI call.
func GetUseCaseTimeout() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("USECASE_TIMEOUT_SECONDS"))
	if err != nil || seconds <= 0 {
		seconds = 2
	}
	return time.Duration(seconds) * time.Second
}

func GetGeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// GetAICommentTimeout is the hard deadline on the outbound model call.
// Past it the comment request fails; there is no retry.
func GetAICommentTimeout() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("AI_TIMEOUT_SECONDS"))
	if err != nil || seconds <= 0 {
		seconds = 45
	}
	return time.Duration(seconds) * time.Second
}
