package main

import (
	"flag"

	"sportevent.link/configs"
	"sportevent.link/configs/configslog"
	"sportevent.link/database"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştır")
	seedFlag := flag.Bool("seed", false, "Başlangıç verilerini (seeder) çalıştır")
	flag.Parse()

	configs.InitDB()
	defer configs.CloseDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(configs.GetDB(), *migrateFlag, *seedFlag)
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
