package period_test

import (
	"errors"
	"testing"
	"time"

	"innkeep/shared/period"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectError   bool
		expectedError error
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "valid daterange",
			input:         "[2024-01-01,2026-01-01)",
			expectError:   false,
			expectedStart: "2024-01-01",
			expectedEnd:   "2026-01-01",
		},
		{
			name:          "valid daterange with spaces",
			input:         " [2024-01-01, 2026-01-01) ",
			expectError:   false,
			expectedStart: "2024-01-01",
			expectedEnd:   "2026-01-01",
		},
		{
			name:          "missing brackets",
			input:         "2024-01-01,2026-01-01",
			expectError:   true,
			expectedError: period.ErrMalformed,
		},
		{
			name:          "inclusive end bracket",
			input:         "[2024-01-01,2026-01-01]",
			expectError:   true,
			expectedError: period.ErrMalformed,
		},
		{
			name:          "missing comma",
			input:         "[2024-01-01)",
			expectError:   true,
			expectedError: period.ErrMalformed,
		},
		{
			name:          "invalid start date",
			input:         "[01/01/2024,2026-01-01)",
			expectError:   true,
			expectedError: period.ErrMalformed,
		},
		{
			name:          "invalid end date",
			input:         "[2024-01-01,never)",
			expectError:   true,
			expectedError: period.ErrMalformed,
		},
		{
			name:          "empty interval",
			input:         "[2024-01-01,2024-01-01)",
			expectError:   true,
			expectedError: period.ErrEmptyInterval,
		},
		{
			name:          "inverted interval",
			input:         "[2026-01-01,2024-01-01)",
			expectError:   true,
			expectedError: period.ErrEmptyInterval,
		},
		{
			name:          "empty string",
			input:         "",
			expectError:   true,
			expectedError: period.ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := period.Parse(tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got := p.Start.Format("2006-01-02"); got != tt.expectedStart {
				t.Errorf("expected start %s, got %s", tt.expectedStart, got)
			}
			if got := p.End.Format("2006-01-02"); got != tt.expectedEnd {
				t.Errorf("expected end %s, got %s", tt.expectedEnd, got)
			}
		})
	}
}

func TestContains(t *testing.T) {
	p, err := period.Parse("[2024-01-01,2026-01-01)")
	if err != nil {
		t.Fatalf("failed to parse period: %v", err)
	}

	tests := []struct {
		name     string
		date     string
		expected bool
	}{
		{
			name:     "start date is inclusive",
			date:     "2024-01-01",
			expected: true,
		},
		{
			name:     "date inside interval",
			date:     "2025-06-15",
			expected: true,
		},
		{
			name:     "day before end",
			date:     "2025-12-31",
			expected: true,
		},
		{
			name:     "end date is exclusive",
			date:     "2026-01-01",
			expected: false,
		},
		{
			name:     "date before start",
			date:     "2023-12-31",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := time.Parse("2006-01-02", tt.date)
			if err != nil {
				t.Fatalf("failed to parse date: %v", err)
			}

			if got := p.Contains(date); got != tt.expected {
				t.Errorf("expected Contains(%s) to be %v, got %v", tt.date, tt.expected, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	input := "[2024-01-01,2026-01-01)"

	p, err := period.Parse(input)
	if err != nil {
		t.Fatalf("failed to parse period: %v", err)
	}

	if got := p.String(); got != input {
		t.Errorf("expected %s, got %s", input, got)
	}
}
