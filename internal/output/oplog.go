package output

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

// DefaultDirectories are created before every run.
var DefaultDirectories = []string{
	"data/output",
	"data/output/logs",
	"data/input",
}

func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// OperationLog appends "[2006-01-02 15:04:05] message" lines to a file.
// Write failures are reported on the process log and otherwise ignored.
type OperationLog struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewOperationLog(path string) *OperationLog {
	if err := ensureParent(path); err != nil {
		log.Printf("⚠️ Failed to create log directory: %v", err)
	}
	return &OperationLog{path: path, now: time.Now}
}

func (l *OperationLog) Logf(format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("⚠️ Failed to write log: %v", err)
		return
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s\n", l.now().Format("2006-01-02 15:04:05"), fmt.Sprintf(format, args...))
	if _, err := f.WriteString(line); err != nil {
		log.Printf("⚠️ Failed to write log: %v", err)
	}
}
