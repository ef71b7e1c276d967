package monitoring

import (
	"testing"
)

func Test_getSegmentName(t *testing.T) {
	tests := []struct {
		name         string
		fullFuncName string
		want         string
	}{
		{
			name:         "pointer receiver method",
			fullFuncName: "github.com/username/project/package.(*Receiver).Method",
			want:         "package.Receiver.Method",
		},
		{
			name:         "value receiver method",
			fullFuncName: "github.com/username/project/package.Receiver.Method",
			want:         "package.Receiver.Method",
		},
		{
			name:         "plain function",
			fullFuncName: "github.com/username/project/package.Function",
			want:         "package.Function",
		},
		{
			name:         "stdlib server method",
			fullFuncName: "net/http.(*Server).Serve",
			want:         "http.Server.Serve",
		},
		{
			name:         "main",
			fullFuncName: "main.main",
			want:         "main.main",
		},
		{
			name:         "runtime goexit",
			fullFuncName: "runtime.goexit",
			want:         "runtime.goexit",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getSegmentName(tt.fullFuncName); got != tt.want {
				t.Errorf("getSegmentName() = %v, want %v", got, tt.want)
			}
		})
	}
}
