package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ivlev/spriteanim/internal/config"
	"github.com/ivlev/spriteanim/internal/container"
	"github.com/ivlev/spriteanim/internal/engine"
)

var version = "dev"

func main() {
	def := config.Default()

	configPtr := flag.String("config", "", "YAML-файл с параметрами анимации (флаги имеют приоритет)")
	dumpPtr := flag.String("dump-config", "", "Записать итоговую конфигурацию в YAML-файл и выйти")
	imagesPtr := flag.String("images", def.ImagesDir, "Папка с исходными изображениями")
	backgroundPtr := flag.String("background", def.Background, "Имя файла фона")
	spritePtr := flag.String("sprite", def.Sprite, "Имя файла спрайта")
	framesDirPtr := flag.String("frames-dir", def.FramesDir, "Временная папка для кадров (пусто: системная временная папка)")
	outputPtr := flag.String("output", def.OutputPath, "Путь к итоговому GIF")
	framesPtr := flag.Int("frames", def.TotalFrames, "Количество кадров в прямом проходе")
	movementPtr := flag.Int("movement", def.YMovementPerFrame, "Смещение спрайта по вертикали за кадр (px, может быть отрицательным)")
	delayPtr := flag.Int("delay", def.DelayMilliseconds, "Пауза между генерацией кадров (мс), на результат не влияет")
	repeatPtr := flag.Bool("repeat", def.Repeat, "Добавить обратный проход и зациклить анимацию")
	statsPtr := flag.Bool("stats", false, "Показать отчет о производительности и дописать его в benchmark.log")

	flag.Parse()

	cfg := def
	if *configPtr != "" {
		loaded, err := config.Load(*configPtr)
		if err != nil {
			log.Fatalf("[-] Ошибка чтения конфигурации: %v", err)
		}
		cfg = loaded
		fmt.Printf("[*] Конфигурация: %s\n", *configPtr)
	}

	// Only flags given on the command line override file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "images":
			cfg.ImagesDir = *imagesPtr
		case "background":
			cfg.Background = *backgroundPtr
		case "sprite":
			cfg.Sprite = *spritePtr
		case "frames-dir":
			cfg.FramesDir = *framesDirPtr
		case "output":
			cfg.OutputPath = *outputPtr
		case "frames":
			cfg.TotalFrames = *framesPtr
		case "movement":
			cfg.YMovementPerFrame = *movementPtr
		case "delay":
			cfg.DelayMilliseconds = *delayPtr
		case "repeat":
			cfg.Repeat = *repeatPtr
		case "stats":
			cfg.ShowStats = *statsPtr
		}
	})
	cfg.BuildVersion = version

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Ошибка: %v", err)
	}

	if *dumpPtr != "" {
		if err := config.Save(cfg, *dumpPtr); err != nil {
			log.Fatalf("[-] Ошибка записи конфигурации: %v", err)
		}
		fmt.Printf("[+++] Конфигурация сохранена: %s\n", *dumpPtr)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	project := engine.NewAnimationProject(&cfg, container.NewGIFEncoder(), engine.NewPacer(cfg.Delay()))
	if err := project.Run(ctx); err != nil {
		stop()
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}

	fmt.Printf("[+++] Успех! Анимация сохранена: %s\n", cfg.OutputPath)
}
