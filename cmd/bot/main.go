package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"revenue-ledger-bot/internal/delivery/telegram/app/bot"
	"revenue-ledger-bot/internal/fetcher"
	cache_redis "revenue-ledger-bot/internal/infrastructure/cache/redis"
	"revenue-ledger-bot/internal/infrastructure/config"
	"revenue-ledger-bot/internal/infrastructure/persistence/postgres"
	revenue_repo "revenue-ledger-bot/internal/infrastructure/persistence/postgres/repository/revenue"
	"revenue-ledger-bot/pkg/logger"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	// Инициализируем логгер
	if err := logger.InitGlobal(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.DebugMode); err != nil {
		log.Fatalf("Не удалось инициализировать логгер: %v", err)
	}

	printHeader("БОТ УЧЁТА ДОХОДОВ")
	fmt.Printf("🔧 Конфигурация:\n")
	fmt.Printf("   Окружение: %s (v%s)\n", cfg.Environment, cfg.Version)
	fmt.Printf("   База данных: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
	fmt.Printf("   Redis: %s\n", cfg.Redis.Addr())
	fmt.Printf("   Биржа курса: %s (%s)\n", cfg.Exchange, cfg.RateSymbol)
	fmt.Printf("   TTL сессии листания: %s\n", cfg.Redis.PageSessionTTL)
	fmt.Println()

	// Подключаемся к PostgreSQL (с авто-миграциями)
	db, err := postgres.Connect(&cfg.Database)
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}
	defer db.Close()

	// Подключаемся к Redis
	cache := cache_redis.NewCache(&cfg.Redis)
	defer cache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := cache.Ping(pingCtx); err != nil {
		cancel()
		log.Fatalf("Не удалось подключиться к Redis: %v", err)
	}
	cancel()
	logger.Info("✅ Connected to Redis")

	// Собираем зависимости бота
	repository := revenue_repo.NewRepository(db)
	sessionStore := cache_redis.NewPageSessionStore(cache, cfg.Redis.PageSessionTTL)

	rateProvider, err := fetcher.NewRateProviderFromConfig(cfg)
	if err != nil {
		log.Fatalf("Не удалось создать провайдер курса: %v", err)
	}
	cachedRates := fetcher.NewCachedRateProvider(rateProvider, cache, cfg.RateSymbol, cfg.Redis.RateCacheTTL)

	telegramBot := bot.NewTelegramBot(cfg, &bot.Dependencies{
		RevenueRepository: repository,
		RateProvider:      cachedRates,
		SessionStore:      sessionStore,
	})

	// Запускаем polling
	if err := telegramBot.Start(); err != nil {
		log.Fatalf("Не удалось запустить бота: %v", err)
	}
	logger.Info("✅ Бот запущен")

	// Graceful shutdown по SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	logger.Info("🛑 Получен сигнал %s, завершение работы...", sig)
	if err := telegramBot.Stop(); err != nil {
		logger.Error("❌ Ошибка остановки бота: %v", err)
	}

	logger.Info("👋 Бот остановлен")
}

// printHeader печатает стартовый баннер
func printHeader(title string) {
	line := strings.Repeat("=", len(title)+8)
	fmt.Println(line)
	fmt.Printf("=== %s ===\n", title)
	fmt.Println(line)
}
