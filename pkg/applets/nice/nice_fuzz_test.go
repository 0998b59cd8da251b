package nice_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rcarmo/go-nice/pkg/applets/nice"
	"github.com/rcarmo/go-nice/pkg/testutil"
)

func FuzzParse(f *testing.F) {
	f.Add("-n\x007\x00cmd")
	f.Add("--adjustment=-3\x00cmd\x00--help")
	f.Add("--\x00--")
	f.Add("-n")
	f.Fuzz(func(t *testing.T, data string) {
		data = testutil.ClampString(data, 256)
		parts := strings.SplitN(data, "\x00", testutil.MaxFuzzArgs)
		argv := append([]string{"nice"}, parts...)
		p, err := nice.Parse(argv)
		if err != nil {
			var perr *nice.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("unexpected error type %T", err)
			}
			return
		}
		if len(p.Command) == 0 {
			t.Fatalf("empty command for %q", argv)
		}
		tail := argv[len(argv)-len(p.Command):]
		for i := range tail {
			if tail[i] != p.Command[i] {
				t.Fatalf("command %q is not a suffix of %q", p.Command, argv)
			}
		}
	})
}

func FuzzNice(f *testing.F) {
	f.Add([]byte("0"))
	if testing.Short() {
		f.Skip("fuzzing skipped in short mode")
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		value := testutil.ClampString(string(data), 8)
		if value == "" {
			value = "0"
		}
		fake := &fakeAdapter{}
		args := []string{"nice", "-n", value, "echo"}
		_, _, code := testutil.CaptureAndRun(t, runWith(fake), args, "")
		if code != 0 && len(fake.calls) != 0 {
			t.Fatalf("adapter called after failed parse of %q", value)
		}
	})
}
