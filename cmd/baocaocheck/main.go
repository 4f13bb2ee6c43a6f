package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/config"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/server"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/util"
)

var (
	port    = flag.Int("port", 0, "cổng dịch vụ (ghi đè config.toml)")
	devMode = flag.Bool("dev", false, "chế độ phát triển")
	dataDir = flag.String("dataDir", "", "thư mục dữ liệu (ghi đè config.toml)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  BAOCAOCHECK - Đối soát báo cáo nhà xe")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Đọc cấu hình thất bại, dùng mặc định: %v", err)
		cfg = config.DefaultConfig()
	}

	// tham số dòng lệnh ghi đè cấu hình
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("Tạo thư mục dữ liệu thất bại: %v", err)
	} else {
		fmt.Printf("Thư mục dữ liệu: %s\n", dir)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Đang khởi động, lắng nghe cổng %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("Khởi động dịch vụ thất bại: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("Đang mở trình duyệt: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("Không mở được trình duyệt, vui lòng truy cập: %s\n", url)
		}
	} else {
		fmt.Printf("Chế độ dev: truy cập %s\n", url)
	}

	fmt.Println("\nNhấn Ctrl+C để dừng dịch vụ...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nĐang đóng dịch vụ...")
	if err := srv.Close(); err != nil {
		log.Printf("Đóng dịch vụ gặp lỗi: %v", err)
	}
}
