package main

import (
	"os"

	"sportevent.link/configs"
	"sportevent.link/configs/configslog"
	"sportevent.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env opsiyoneldir; yoksa ortam değişkenleri kullanılır.
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.InitDB()
	defer configs.CloseDB()

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/panel_layout",
	})

	routes.SetupRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}
	configslog.SLog.Infof("Sunucu dinlemede: :%s", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
