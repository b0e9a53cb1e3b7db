package sanitization

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane", "Jane"},
		{"<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{`"quoted" & 'single'`, "&#34;quoted&#34; &amp; &#39;single&#39;"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EscapeHTML(tt.in); got != tt.want {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSingleLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane", "Jane"},
		{"  Jane   Doe ", "Jane Doe"},
		{"Jane\r\nBcc: victim@example.com", "Jane Bcc: victim@example.com"},
		{"\t\n", ""},
	}

	for _, tt := range tests {
		if got := SingleLine(tt.in); got != tt.want {
			t.Errorf("SingleLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMultilineHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello\nWorld", "Hello<br />World"},
		{"Hello\r\nWorld", "Hello<br />World"},
		{"a\n\nb", "a<br /><br />b"},
		{"<b>bold</b>\nok", "&lt;b&gt;bold&lt;/b&gt;<br />ok"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := MultilineHTML(tt.in); got != tt.want {
			t.Errorf("MultilineHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
