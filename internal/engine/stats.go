package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ivlev/spriteanim/internal/system"
)

type Timings struct {
	Total    time.Duration
	Generate time.Duration
	Assemble time.Duration
}

// FormatReport renders the performance summary printed after a run.
func FormatReport(build string, frames int, t Timings, mem system.MemoryUsage) string {
	fps := 0.0
	if t.Total > 0 {
		fps = float64(frames) / t.Total.Seconds()
	}
	return fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Frames: %d\n"+
			"Total Time: %.2fs\n"+
			"Generation (compose+store): %.2fs\n"+
			"Assembly: %.2fs\n"+
			"Effective FPS: %.2f\n"+
			"Process RSS: %.1f MiB\n"+
			"----------------------------\n",
		build, frames, t.Total.Seconds(), t.Generate.Seconds(), t.Assemble.Seconds(), fps, system.MiB(mem.ProcessRSS),
	)
}

func (p *AnimationProject) reportStats(t Timings) {
	mem, err := system.ReadMemoryUsage()
	if err != nil {
		fmt.Printf("[!] Не удалось получить данные о памяти: %v\n", err)
	}

	fmt.Print(FormatReport(p.Config.BuildVersion, len(p.frames), t, mem))

	logEntry := fmt.Sprintf("[%s] Build: %s | Output: %s | Frames: %d | Total: %.2fs | Generate: %.2fs | Assemble: %.2fs | RSS: %.1fMiB\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		filepath.Base(p.Config.OutputPath),
		len(p.frames),
		t.Total.Seconds(),
		t.Generate.Seconds(),
		t.Assemble.Seconds(),
		system.MiB(mem.ProcessRSS),
	)

	if p.StatsLogPath == "" {
		return
	}
	if err := appendLog(p.StatsLogPath, logEntry); err != nil {
		fmt.Printf("[!] Не удалось записать %s: %v\n", p.StatsLogPath, err)
	}
}

func appendLog(path, entry string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(entry); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
