package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	serverFlags := []string{"-a", "-d", "-n", "-m"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "separate values",
			args: []string{"-d", "postgres://db", "-n", "vault"},
			want: []string{"-d", "postgres://db", "-n", "vault"},
		},
		{
			name: "joined value",
			args: []string{"-n=vault", "-c", "conf.json"},
			want: []string{"-n=vault"},
		},
		{
			name: "one-shot switches and their operands are dropped",
			args: []string{"-migrate", "-issue-token", "ann", "-a", ":50051"},
			want: []string{"-a", ":50051"},
		},
		{
			name: "prefix of an allowed flag is not a match",
			args: []string{"-migrations", "x", "-m", ":9090"},
			want: []string{"-m", ":9090"},
		},
		{
			name: "dash-led token is never taken as a value",
			args: []string{"-m", "-d", "dsn"},
			want: []string{"-m", "-d", "dsn"},
		},
		{
			name: "trailing flag without value",
			args: []string{"-a", ":1", "-n"},
			want: []string{"-a", ":1", "-n"},
		},
		{
			name: "repeats keep their order",
			args: []string{"-n", "one", "--x=1", "-n", "two"},
			want: []string{"-n", "one", "-n", "two"},
		},
		{
			name: "nothing allowed",
			args: []string{"positional", "--other=1"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, serverFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func Test_jsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.json"}
		assert.Equal(t, "/path/short.json", JsonConfigFlags())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/path/long.json"}
		assert.Equal(t, "/path/long.json", JsonConfigFlags())
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1", "-y", "2"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("multiple flags, last wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", JsonConfigFlags())
	})
}

func TestHasFlag(t *testing.T) {
	assert.True(t, HasFlag([]string{"-d", "dsn", "-migrate"}, "-migrate", "--migrate"))
	assert.True(t, HasFlag([]string{"--migrate=true"}, "-migrate", "--migrate"))
	assert.False(t, HasFlag([]string{"-migrate=false"}, "-migrate"))
	assert.False(t, HasFlag([]string{"-m", "-migrations"}, "-migrate"))
	assert.False(t, HasFlag(nil, "-migrate"))
}

func TestValue(t *testing.T) {
	v, ok := Value([]string{"-d", "dsn", "-issue-token", "ann"}, "-issue-token")
	assert.True(t, ok)
	assert.Equal(t, "ann", v)

	v, ok = Value([]string{"--issue-token=bob", "-issue-token", "carl"}, "-issue-token", "--issue-token")
	assert.True(t, ok)
	assert.Equal(t, "carl", v)

	_, ok = Value([]string{"-issue-token"}, "-issue-token")
	assert.False(t, ok)

	_, ok = Value([]string{"-migrate"}, "-issue-token")
	assert.False(t, ok)
}
