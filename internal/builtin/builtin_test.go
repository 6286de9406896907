package builtin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosh-shell/gosh/internal/session"
)

func newTestSession(env map[string]string) *session.Session {
	return &session.Session{
		Cwd:    "/tmp",
		Getenv: func(key string) string { return env[key] },
		Exit:   func(int) {},
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	RegisterAll(reg, func(string) (string, error) { return "", nil })

	assert.Equal(t, []string{"cd", "echo", "exit", "history", "pwd", "type"}, reg.Names())

	b, ok := reg.Lookup("echo")
	require.True(t, ok)
	assert.Equal(t, "echo", b.Name())

	_, ok = reg.Lookup("ls")
	assert.False(t, ok)
}

func TestEcho(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"hello", "world"}, "hello world\n"},
		{[]string{"one"}, "one\n"},
		{nil, "\n"},
	}

	for _, tc := range cases {
		var out, errs bytes.Buffer
		err := (&Echo{}).Run(newTestSession(nil), tc.args, nil, &out, &errs)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out.String())
		assert.Empty(t, errs.String(), "echo never writes to stderr")
	}
}

func TestEchoDrainsUpstream(t *testing.T) {
	upstream := strings.NewReader(strings.Repeat("z", 4096))
	var out bytes.Buffer
	require.NoError(t, (&Echo{}).Run(newTestSession(nil), []string{"hi"}, upstream, &out, &out))
	assert.Zero(t, upstream.Len(), "upstream must be consumed to EOF")
}

func TestPwd(t *testing.T) {
	sess := newTestSession(nil)
	sess.Cwd = "/some/where"
	var out bytes.Buffer
	require.NoError(t, (&Pwd{}).Run(sess, nil, nil, &out, &out))
	assert.Equal(t, "/some/where\n", out.String())
}

func TestExit(t *testing.T) {
	cases := []struct {
		args []string
		want int
	}{
		{nil, 0},
		{[]string{"7"}, 7},
		{[]string{"notanumber"}, 0},
	}

	for _, tc := range cases {
		sess := newTestSession(nil)
		var got int
		called := false
		sess.Exit = func(code int) {
			got = code
			called = true
		}
		require.NoError(t, (&Exit{}).Run(sess, tc.args, nil, nil, nil))
		require.True(t, called)
		assert.Equal(t, tc.want, got)
	}
}
