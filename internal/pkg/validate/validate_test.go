package validate

import (
	"strings"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"普通邮箱", "user@example.com", true},
		{"带加号的邮箱", "user+tag@example.com", true},
		{"子域名邮箱", "a@mail.example.co.kr", true},
		{"空字符串", "", false},
		{"缺少@", "userexample.com", false},
		{"缺少域名点", "user@example", false},
		{"@前为空", "@example.com", false},
		{"@后为空", "user@", false},
		{"包含空格", "us er@example.com", false},
		{"两个@", "user@@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.input); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  User@Example.COM \n"); got != "user@example.com" {
		t.Errorf("NormalizeEmail() = %q, want %q", got, "user@example.com")
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"字母加数字且满8位", "abcdef12", true},
		{"大写字母加数字", "ABCDEFG1", true},
		{"带符号的合法密码", "p@ssw0rd!", true},
		{"不足8位", "abc123", false},
		{"纯字母", "abcdefgh", false},
		{"纯数字", "12345678", false},
		{"空字符串", "", false},
		{"全角字符凑长度无字母数字", "ｐａｓｓｗｏｒｄ！", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPassword(tt.input); got != tt.want {
				t.Errorf("IsValidPassword(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"首尾空白", "  你好  ", "你好"},
		{"内部连续空白折叠", "hello   \t world", "hello world"},
		{"换行折叠", "第一行\n第二行", "第一行 第二行"},
		{"纯空白", "   \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTitle(tt.input); got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"最短2字符", "你好", true},
		{"最长80字符", strings.Repeat("字", 80), true},
		{"1字符太短", "短", false},
		{"81字符太长", strings.Repeat("字", 81), false},
		{"空字符串", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTitle(tt.input); got != tt.want {
				t.Errorf("IsValidTitle(长度%d) = %v, want %v", len([]rune(tt.input)), got, tt.want)
			}
		})
	}
}

func TestIsValidBody(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"最短4字符", "好好学习", true},
		{"最长4000字符", strings.Repeat("a", 4000), true},
		{"3字符太短", "abc", false},
		{"4001字符太长", strings.Repeat("a", 4001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidBody(tt.input); got != tt.want {
				t.Errorf("IsValidBody(长度%d) = %v, want %v", len([]rune(tt.input)), got, tt.want)
			}
		})
	}
}

func TestIsValidMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"最短4字符", "留言内容", true},
		{"最长2000字符", strings.Repeat("a", 2000), true},
		{"3字符太短", "abc", false},
		{"2001字符太长", strings.Repeat("a", 2001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidMessage(tt.input); got != tt.want {
				t.Errorf("IsValidMessage(长度%d) = %v, want %v", len([]rune(tt.input)), got, tt.want)
			}
		})
	}
}

func TestNormalizeComment(t *testing.T) {
	// 评论只去首尾空白，内部空白必须原样保留
	if got := NormalizeComment("  第一行\n\n第二行  "); got != "第一行\n\n第二行" {
		t.Errorf("NormalizeComment() = %q，内部空白被改动", got)
	}
}

func TestIsValidComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"1字符", "好", true},
		{"1000字符", strings.Repeat("a", 1000), true},
		{"空字符串", "", false},
		{"1001字符太长", strings.Repeat("a", 1001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidComment(tt.input); got != tt.want {
				t.Errorf("IsValidComment(长度%d) = %v, want %v", len([]rune(tt.input)), got, tt.want)
			}
		})
	}
}

func TestIsValidDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"1字符", "安", true},
		{"24字符", strings.Repeat("a", 24), true},
		{"emoji昵称", "🐟安知鱼🐟", true},
		{"空字符串", "", false},
		{"25字符太长", strings.Repeat("a", 25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDisplayName(tt.input); got != tt.want {
				t.Errorf("IsValidDisplayName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID int64
		wantOK bool
	}{
		{"普通ID", "42", 42, true},
		{"带空白", " 7 ", 7, true},
		{"空字符串", "", 0, false},
		{"零", "0", 0, false},
		{"负数", "-3", 0, false},
		{"非数字", "abc", 0, false},
		{"小数", "1.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParseID(tt.input)
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("ParseID(%q) = (%d, %v), want (%d, %v)", tt.input, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
