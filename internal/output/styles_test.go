package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.Color
	}{
		{
			name:   "created returns green",
			status: StatusCreated,
			wantFG: colorGreen,
		},
		{
			name:   "exists returns yellow",
			status: StatusExists,
			wantFG: ColorYellow,
		},
		{
			name:   "planned returns blue",
			status: StatusPlanned,
			wantFG: colorBlue,
		},
		{
			name:     "failed returns bold red",
			status:   StatusFailed,
			wantBold: true,
			wantFG:   colorBoldRed,
		},
		{
			name:   "unknown returns default unstyled",
			status: "unknown-value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := statusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			} else {
				assert.Equal(t, lipgloss.NoColor{}, style.GetForeground())
			}
		})
	}
}

func TestFormatArtifactLine(t *testing.T) {
	line := FormatArtifactLine("controller", "app/Modules/Posts/Controllers/PostsController.php", StatusCreated)

	assert.Contains(t, line, "a:")
	assert.Contains(t, line, "controller")
	assert.Contains(t, line, "app/Modules/Posts/Controllers/PostsController.php")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(line), StatusCreated))
}

func TestFormatArtifactLine_MinimumPadding(t *testing.T) {
	long := strings.Repeat("x", 80)
	line := FormatArtifactLine("view", long, StatusExists)
	assert.Contains(t, line, long+"  ")
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Module Blog/Posts scaffolded")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Module Blog/Posts scaffolded")
}
