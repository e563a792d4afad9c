package uri

import "testing"

func TestSafeNextPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"站内路径放行", "/mypage", "/mypage"},
		{"带查询的站内路径放行", "/posts/3?edited=1", "/posts/3?edited=1"},
		{"空字符串回落首页", "", "/"},
		{"外站地址回落首页", "https://evil.example.com", "/"},
		{"协议相对地址回落首页", "//evil.example.com", "/"},
		{"相对路径回落首页", "mypage", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeNextPath(tt.input); got != tt.want {
				t.Errorf("SafeNextPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWithQueryFlag(t *testing.T) {
	tests := []struct {
		name string
		path string
		flag string
		want string
	}{
		{"无查询参数", "/", "posted", "/?posted=1"},
		{"已有查询参数", "/posts/3?from=feed", "edited", "/posts/3?from=feed&edited=1"},
		{"子路径", "/mypage", "request", "/mypage?request=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithQueryFlag(tt.path, tt.flag); got != tt.want {
				t.Errorf("WithQueryFlag(%q, %q) = %q, want %q", tt.path, tt.flag, got, tt.want)
			}
		})
	}
}
