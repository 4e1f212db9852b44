package holiday

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/username/nsw-workday-calc/internal/calendar"
	"go.uber.org/zap"
)

// Gazetted is a one-off public holiday proclaimed for a single date
type Gazetted struct {
	Date time.Time
	Name string
}

// FileHolidays loads gazetted one-off holidays from a local text file
type FileHolidays struct {
	filePath string
	cal      calendar.Calendar
	logger   *zap.Logger
}

// NewFileHolidays creates a new FileHolidays instance
func NewFileHolidays(filePath string, cal calendar.Calendar, logger *zap.Logger) *FileHolidays {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FileHolidays{
		filePath: filePath,
		cal:      cal,
		logger:   logger,
	}
}

// Load reads the file
func (fh *FileHolidays) Load() ([]Gazetted, error) {
	file, err := os.Open(fh.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open holidays file: %w", err)
	}
	defer file.Close()

	days, err := fh.parse(file)
	if err != nil {
		return nil, err
	}

	fh.logger.Info("Gazetted holidays loaded",
		zap.String("file", fh.filePath),
		zap.Int("holidays", len(days)))

	return days, nil
}

// parse reads lines of the form
//
//	YYYY-MM-DD name
//
// Example: 2022-09-22 National Day of Mourning
func (fh *FileHolidays) parse(r io.Reader) ([]Gazetted, error) {
	scanner := bufio.NewScanner(r)
	var days []Gazetted

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, " ", 2)
		name := "Gazetted holiday"
		if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
			name = strings.TrimSpace(parts[1])
		}

		var year, month, day int
		if _, err := fmt.Sscanf(parts[0], "%d-%d-%d", &year, &month, &day); err != nil {
			fh.logger.Warn("Invalid line format", zap.String("line", line), zap.Error(err))
			continue
		}

		date, err := fh.cal.Date(year, time.Month(month), day)
		if err != nil {
			fh.logger.Warn("Failed to parse date", zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		days = append(days, Gazetted{Date: date, Name: name})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holidays file: %w", err)
	}

	return days, nil
}
