// Package testutil содержит общие утилиты для тестирования.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStdout выполняет fn, перехватывая os.Stdout, и возвращает вывод.
// Нужен там, где код пишет в os.Stdout напрямую, минуя cobra.Command.OutOrStdout.
// Pipe читается параллельно, поэтому объём вывода не ограничен буфером pipe.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.Bytes()
	}()

	original := os.Stdout
	os.Stdout = w
	func() {
		defer func() { os.Stdout = original }()
		fn()
	}()

	require.NoError(t, w.Close())
	out := <-done
	require.NoError(t, r.Close())
	return string(out)
}
