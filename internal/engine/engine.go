package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ivlev/spriteanim/internal/config"
	"github.com/ivlev/spriteanim/internal/container"
	"github.com/ivlev/spriteanim/internal/framestore"
	"github.com/ivlev/spriteanim/internal/motion"
	"github.com/ivlev/spriteanim/internal/source"
)

type AnimationProject struct {
	Config       *config.Config
	Encoder      container.Encoder
	Pacer        Pacer
	StatsLogPath string
	Quiet        bool
	frames       []Frame
}

func NewAnimationProject(cfg *config.Config, enc container.Encoder, pacer Pacer) *AnimationProject {
	return &AnimationProject{
		Config:       cfg,
		Encoder:      enc,
		Pacer:        pacer,
		StatsLogPath: "benchmark.log",
	}
}

// Frames returns the frames of the last Run in generation order.
func (p *AnimationProject) Frames() []Frame {
	return p.frames
}

// Run loads the inputs, generates every frame into temporary storage and
// assembles the output. The temporary frames are removed on every path
// once storage has been opened.
func (p *AnimationProject) Run(ctx context.Context) error {
	startTime := time.Now()
	p.frames = nil

	if err := p.Config.Validate(); err != nil {
		return err
	}

	scene, err := source.LoadScene(p.Config.BackgroundPath(), p.Config.SpritePath())
	if err != nil {
		return err
	}

	store, err := framestore.Open(p.Config.FramesDir)
	if err != nil {
		return fmt.Errorf("ошибка создания каталога кадров: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[!] Не удалось удалить временные кадры %s: %v", store.Dir(), err)
		}
	}()

	bgSize, spriteSize := scene.BackgroundSize(), scene.SpriteSize()
	planner := motion.NewPlanner(bgSize, spriteSize, p.Config.YMovementPerFrame)

	seq := &Sequencer{
		Scene:       scene,
		Planner:     planner,
		Store:       store,
		Pacer:       p.Pacer,
		TotalFrames: p.Config.TotalFrames,
		Repeat:      p.Config.Repeat,
	}

	p.printf("--- [PROJECT: SPRITE ANIMATION] ---\n")
	p.printf("[*] Фон: %s (%dx%d) | Спрайт: %s (%dx%d)\n",
		p.Config.BackgroundPath(), bgSize.X, bgSize.Y, p.Config.SpritePath(), spriteSize.X, spriteSize.Y)
	p.printf("[*] Кадров: %d | Смещение: %d px/кадр | Задержка: %v | Повтор: %v\n",
		seq.Length(), p.Config.YMovementPerFrame, p.Config.Delay(), p.Config.Repeat)
	p.printf("-----------------------------------\n")

	if !p.Quiet {
		seq.Progress = func(done, total int) {
			fmt.Printf("[>] Ready: %d/%d\n", done, total)
		}
	}

	generateStart := time.Now()
	p.frames, err = seq.Generate(ctx)
	if err != nil {
		return fmt.Errorf("ошибка генерации кадров: %w", err)
	}
	generateTime := time.Since(generateStart)

	paths, err := store.Paths()
	if err != nil {
		return fmt.Errorf("ошибка чтения каталога кадров: %w", err)
	}
	if len(paths) != len(p.frames) {
		return fmt.Errorf("%w: в хранилище %d кадров, ожидалось %d", container.ErrAssembly, len(paths), len(p.frames))
	}

	p.printf("[*] Сборка анимации: %s\n", p.Config.OutputPath)
	assembleStart := time.Now()
	if err := p.Encoder.Assemble(ctx, paths, p.Config.OutputPath, p.Config.Repeat); err != nil {
		return err
	}
	assembleTime := time.Since(assembleStart)

	if p.Config.ShowStats {
		p.reportStats(Timings{
			Total:    time.Since(startTime),
			Generate: generateTime,
			Assemble: assembleTime,
		})
	}

	return nil
}

func (p *AnimationProject) printf(format string, args ...any) {
	if !p.Quiet {
		fmt.Printf(format, args...)
	}
}
