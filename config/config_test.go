package config

import "testing"

// The example config exercises every section, including the underscore keys
// viper only decodes through mapstructure tags.
func TestInitConfigLoadsUnderscoreKeys(t *testing.T) {
	cfg, err := InitConfig("config.example.yaml")
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}

	if !cfg.Postgres.AutoCreateTable {
		t.Error("postgres.auto_create not loaded")
	}
	if cfg.Minio.AccessKey != "minioadmin" || cfg.Minio.SecretKey != "minioadmin" {
		t.Errorf("minio credentials not loaded: %q / %q", cfg.Minio.AccessKey, cfg.Minio.SecretKey)
	}
	if cfg.HuggingFace.TimeoutSeconds != 15 {
		t.Errorf("huggingface.timeout_seconds not loaded: %d", cfg.HuggingFace.TimeoutSeconds)
	}

	m := cfg.HuggingFace.Models
	models := map[string]string{
		"image_captioning":   m.ImageCaptioning,
		"language_detection": m.LanguageDetection,
		"translation":        m.Translation,
		"tag_generation":     m.TagGeneration,
		"summarization":      m.Summarization,
	}
	for key, value := range models {
		if value == "" {
			t.Errorf("models.%s not loaded", key)
		}
	}
}

func TestInitConfigLoadsPlainKeys(t *testing.T) {
	cfg, err := InitConfig("config.example.yaml")
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Server.Port != ":8080" {
		t.Errorf("server.port = %q", cfg.Server.Port)
	}
	if cfg.Postgres.Database != "craftopia" {
		t.Errorf("postgres.database = %q", cfg.Postgres.Database)
	}
	if cfg.RabbitMQ.Queue != "enrichment_jobs" {
		t.Errorf("rabbitmq.queue = %q", cfg.RabbitMQ.Queue)
	}
	if cfg.HuggingFace.URL == "" {
		t.Error("huggingface.url not loaded")
	}
}

func TestInitConfigMissingFile(t *testing.T) {
	if _, err := InitConfig("does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
