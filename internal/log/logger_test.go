package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name   string
		Level  Level
		Log    func(l *Logger)
		Expect string
	}{
		{"debug filtered at info", Info, func(l *Logger) { l.Debug("hidden") }, ""},
		{"info at info", Info, func(l *Logger) { l.Info("shown") }, "INFO shown\n"},
		{"warnf at trace", Trace, func(l *Logger) { l.Warnf("frame %d", 7) }, "WARN frame 7\n"},
		{"percent without args", Trace, func(l *Logger) { l.Error("100%") }, "EROR 100%\n"},
		{"critical at error", Error, func(l *Logger) { l.Critical("boom") }, "CRIT boom\n"},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := New(SetWriter(&buf), SetLevel(tcase.Level))

			tcase.Log(logger)

			assert.Equal(t, tcase.Expect, buf.String())
		})
	}
}

func TestLogger_ChildInheritsPatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	parent := New(SetWriter(&buf), SetLevel(Warn), AddContext("app", "pds"))
	child := parent.New(AddContext("pkg", "lruk"))

	child.Info("before")
	assert.Empty(t, buf.String())

	parent.PatchLevel(Debug)
	child.Debug("after")

	assert.Equal(t, "DBUG after\tapp=pds pkg=lruk\n", buf.String())
}

func TestLogger_ChildOverridesLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	parent := New(SetWriter(&buf), SetLevel(Error))
	child := parent.New(SetLevel(Trace))

	child.Trace("visible")
	parent.Warn("invisible")

	assert.Equal(t, "TRCE visible\n", buf.String())
}

func TestAddContext_SameKey(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := New(SetWriter(&buf), AddContext("k", "a"), AddContext("k", "b"))
	logger.Info("x")

	assert.Equal(t, "INFO x\tk=a,b\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		In     string
		Expect Level
	}{
		{"trace", Trace},
		{"DBUG", Debug},
		{"info", Info},
		{"warning", Warn},
		{"eror", Error},
		{"critical", Critical},
	} {
		level, err := ParseLevel(tcase.In)

		require.NoError(t, err, tcase.In)
		assert.Equal(t, tcase.Expect, level, tcase.In)
	}

	_, err := ParseLevel("loud")
	assert.True(t, errors.Is(err, ErrLevelNotRecognised))
	assert.EqualError(t, err, "level is not recognised: loud")
}

func TestLogger_Colour(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := New(SetWriter(&buf), SetLevel(Trace), SetColour(true))
	logger.Trace("a")
	logger.Warnf("b %d", 2)

	assert.Equal(t, "\x1b[96mTRCE\x1b[0m a\n\x1b[33mWARN\x1b[0m b 2\n", buf.String())
}

func TestLogger_ChildInheritsColour(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	parent := New(SetWriter(&buf))
	child := parent.New(AddContext("pkg", "cowtrie"))

	parent.Patch(SetColour(true))
	child.Info("on")

	assert.Equal(t, "\x1b[36mINFO\x1b[0m on\tpkg=cowtrie\n", buf.String())
}

func TestLevel_UnknownNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "???", Level(42).String())
	assert.Equal(t, "???", Level(42).ColouredString())
}
