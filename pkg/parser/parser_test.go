package parser

import (
	"reflect"
	"testing"
)

func TestParseHTMLWordBank(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		expected []string
		wantErr  bool
	}{
		{
			name:     "Simple HTML",
			content:  []byte("<html><body>Hello World</body></html>"),
			expected: []string{"hello", "world"},
			wantErr:  false,
		},
		{
			name:     "HTML with Script and Style",
			content:  []byte("<html><script>var x = 'test';</script><style>.test{color:red;}</style><body>Hello World</body></html>"),
			expected: []string{"hello", "world"},
			wantErr:  false,
		},
		{
			name:     "HTML with Special Characters",
			content:  []byte("<html><body>Hello! World? (Test) 123 mid-word</body></html>"),
			expected: []string{"hello", "world", "test"},
			wantErr:  false,
		},
		{
			name:     "Invalid HTML",
			content:  []byte("<html><body>Hello World</body>"),
			expected: []string{"hello", "world"},
			wantErr:  false, // the HTML parser is forgiving
		},
		{
			name:     "Empty HTML",
			content:  []byte(""),
			expected: make([]string, 0),
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHTMLWordBank(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHTMLWordBank() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			// Handle nil case
			if got == nil {
				got = make([]string, 0)
			}

			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseHTMLWordBank() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseWordBank(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		expected []string
	}{
		{
			name:     "Newline Separated",
			content:  []byte("hello\nworld\ntest"),
			expected: []string{"hello", "world", "test"},
		},
		{
			name:     "Single Line",
			content:  []byte("hello world test"),
			expected: []string{"hello", "world", "test"},
		},
		{
			name:     "Mixed Case and Blank Lines",
			content:  []byte("Hello\n\n\tWORLD  \r\n"),
			expected: []string{"hello", "world"},
		},
		{
			name:     "Empty Content",
			content:  []byte(""),
			expected: make([]string, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWordBank(tt.content)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseWordBank() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCleanWord(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple Word",
			input:    "Hello",
			expected: "hello",
		},
		{
			name:     "Word with Special Characters",
			input:    "Hello!@#$%",
			expected: "hello",
		},
		{
			name:     "Word with Inner Punctuation",
			input:    "(don't)",
			expected: "don't",
		},
		{
			name:     "Empty String",
			input:    "",
			expected: "",
		},
		{
			name:     "Only Special Characters",
			input:    "!@#$%",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanWord(tt.input); got != tt.expected {
				t.Errorf("cleanWord() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsAlphabetic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Simple Word", "hello", true},
		{"Word with Numbers", "hello123", false},
		{"Word with Special Characters", "hello!", false},
		{"Empty String", "", true},
		{"Mixed Characters", "Hello World!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAlphabetic(tt.input); got != tt.expected {
				t.Errorf("IsAlphabetic() = %v, want %v", got, tt.expected)
			}
		})
	}
}
