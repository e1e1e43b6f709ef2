package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swu/internal/core/domain"
)

func TestParseFrame(t *testing.T) {
	t.Run("step with quoted numbers", func(t *testing.T) {
		f, err := domain.ParseFrame([]byte(`{"type": "step", "number": "4", "step": "2", "name": "rootfs", "percent": "50"}`))
		require.NoError(t, err)
		assert.Equal(t, domain.FrameStep, f.Type)
		assert.Equal(t, 2, f.Step.Int())
		assert.Equal(t, 50, f.Percent.Int())
		assert.Equal(t, 4, f.Count.Int())
		assert.Equal(t, "rootfs", f.Name)
	})

	t.Run("step with plain numbers", func(t *testing.T) {
		f, err := domain.ParseFrame([]byte(`{"type":"step","number":4,"step":2,"percent":50.0}`))
		require.NoError(t, err)
		assert.Equal(t, 2, f.Step.Int())
		assert.Equal(t, 50, f.Percent.Int())
		assert.Equal(t, 4, f.Count.Int())
	})

	t.Run("message", func(t *testing.T) {
		f, err := domain.ParseFrame([]byte(`{"type":"message","level":"3","text":"Installing rootfs"}`))
		require.NoError(t, err)
		assert.Equal(t, domain.FrameMessage, f.Type)
		assert.Equal(t, domain.Level{Value: 3, Set: true}, f.Level)
		assert.Equal(t, "Installing rootfs", f.Text)
	})

	t.Run("status", func(t *testing.T) {
		f, err := domain.ParseFrame([]byte(`{"type":"status","status":"RUN"}`))
		require.NoError(t, err)
		assert.Equal(t, "RUN", f.Status)
	})

	t.Run("empty and null numbers", func(t *testing.T) {
		f, err := domain.ParseFrame([]byte(`{"type":"step","step":"","percent":null}`))
		require.NoError(t, err)
		assert.Equal(t, 0, f.Step.Int())
		assert.Equal(t, 0, f.Percent.Int())
	})

	t.Run("not json", func(t *testing.T) {
		_, err := domain.ParseFrame([]byte(`{"type":`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrMalformedFrame.Error())
	})

	t.Run("non numeric field", func(t *testing.T) {
		_, err := domain.ParseFrame([]byte(`{"type":"step","step":"two"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrMalformedFrame.Error())
	})

	t.Run("numbers outside int32", func(t *testing.T) {
		for _, payload := range []string{
			`{"type":"step","step":"1e300","number":"1","percent":"0"}`,
			`{"type":"step","step":2147483648,"number":"1","percent":"0"}`,
			`{"type":"step","step":"1","number":"1","percent":"-1e12"}`,
			`{"type":"step","step":"Inf","number":"1","percent":"0"}`,
			`{"type":"step","step":"NaN","number":"1","percent":"0"}`,
		} {
			_, err := domain.ParseFrame([]byte(payload))
			require.Error(t, err, payload)
			assert.Contains(t, err.Error(), domain.ErrNumberOutOfRange.Error(), payload)
		}
	})

	t.Run("int32 bounds are accepted", func(t *testing.T) {
		f, err := domain.ParseFrame([]byte(`{"type":"step","step":2147483647,"number":"-2147483648","percent":"12.9"}`))
		require.NoError(t, err)
		assert.Equal(t, 2147483647, f.Step.Int())
		assert.Equal(t, -2147483648, f.Count.Int())
		assert.Equal(t, 12, f.Percent.Int())
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := domain.ParseFrame([]byte(`{"text":"hello"}`))
		require.ErrorIs(t, err, domain.ErrMissingFrameType)
	})
}

func TestLevel_Entry(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantDanger bool
		wantLevel  domain.Severity
		unleveled  bool
	}{
		{name: "error level", payload: `{"type":"message","level":1,"text":"x"}`, wantDanger: true, wantLevel: domain.SeverityError},
		{name: "quoted threshold", payload: `{"type":"message","level":"3","text":"x"}`, wantDanger: true, wantLevel: domain.SeverityInfo},
		{name: "above threshold", payload: `{"type":"message","level":"4","text":"x"}`, wantLevel: domain.SeverityTrace},
		{name: "fraction above threshold", payload: `{"type":"message","level":"3.5","text":"x"}`, wantLevel: domain.SeverityTrace},
		{name: "fraction below threshold", payload: `{"type":"message","level":2.5,"text":"x"}`, wantDanger: true, wantLevel: domain.SeverityInfo},
		{name: "missing level", payload: `{"type":"message","text":"x"}`, unleveled: true},
		{name: "null level", payload: `{"type":"message","level":null,"text":"x"}`, unleveled: true},
		{name: "non numeric level", payload: `{"type":"message","level":"high","text":"x"}`, unleveled: true},
		{name: "huge level", payload: `{"type":"message","level":1e300,"text":"x"}`, wantLevel: domain.Severity(2147483647)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := domain.ParseFrame([]byte(tt.payload))
			require.NoError(t, err)

			entry := f.Level.Entry(f.Text)
			assert.Equal(t, "x", entry.Text)
			assert.Equal(t, tt.wantDanger, entry.Danger())
			assert.Equal(t, tt.unleveled, entry.Unleveled)
			if !tt.unleveled {
				assert.Equal(t, tt.wantLevel, entry.Level)
			}
		})
	}
}
