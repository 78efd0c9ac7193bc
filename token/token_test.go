package token

import (
	"testing"
)

func TestCreateToken(t *testing.T) {
	tests := []struct {
		name      string
		tokenType TokenType
		lexeme    string
		want      Token
	}{
		{
			name:      "Create GIVEN token",
			tokenType: GIVEN,
			lexeme:    "given",
			want:      Token{TokenType: GIVEN, Lexeme: "given", Line: 1, Column: 1},
		},
		{
			name:      "Create COMMA token",
			tokenType: COMMA,
			lexeme:    ",",
			want:      Token{TokenType: COMMA, Lexeme: ",", Line: 1, Column: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreateToken(tt.tokenType, tt.lexeme, 1, 1)
			if got != tt.want {
				t.Errorf("CreateToken() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateLiteralToken(t *testing.T) {
	got := CreateLiteralToken(INT, uint64(42), "42", 1, 1)
	want := Token{TokenType: INT, Lexeme: "42", Literal: uint64(42), Line: 1, Column: 1}
	if got != want {
		t.Errorf("CreateLiteralToken() = %v, want %v", got, want)
	}
}

func TestKeyWordsLookup(t *testing.T) {
	tokenType, ok := KeyWords["must"]
	if !ok || tokenType != MUST {
		t.Errorf("KeyWords[\"must\"] = %v, %v; want %v, true", tokenType, ok, MUST)
	}
	if _, ok := KeyWords["trusted"]; ok {
		t.Errorf("KeyWords[\"trusted\"] should not be a keyword")
	}
}
