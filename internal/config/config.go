package config

import (
	"os"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート

	PublicBaseURL string // アップロード画像のURL生成に使う
	StaticDir     string // 静的ファイル置き場

	OpenRouterBaseURL string // 補完APIのベースURL
	OpenRouterAPIKey  string
	ChatModel         string
	ChatPrompt        string        // systemプロンプトの前置き（上書き可）
	ChatTimeout       time.Duration // 外部補完API呼び出しの上限
}

// Loadは環境変数から設定を読む。未設定はdev向けデフォルト
func Load() Config {
	return Config{
		Port: getEnv("PORT", "5000"),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:5000"),
		StaticDir:     getEnv("STATIC_DIR", "./static"),

		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		ChatModel:         getEnv("OPENROUTER_MODEL", "google/gemini-2.0-flash-exp:free"),
		ChatPrompt:        getEnv("CHATBOT_PROMPT", "You are MinePhone's virtual sales assistant. You are friendly and know phones inside out."),
		ChatTimeout:       getEnvDuration("CHAT_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
