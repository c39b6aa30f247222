package word

import (
	"reflect"
	"testing"
)

func TestLetterStatusEnums(t *testing.T) {
	testCases := []struct {
		letterStatus LetterStatus
		expected     int
		desc         string
	}{
		{Unknown, 0, "Unknown should be 0"},
		{Miss, 1, "Miss should be 1"},
		{Partial, 2, "Partial should be 2"},
		{Exact, 3, "Exact should be 3"},
	}

	for _, tt := range testCases {
		t.Run(tt.desc, func(t *testing.T) {
			if int(tt.letterStatus) != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, tt.letterStatus)
			}
		})
	}
}

func TestLetterStatuses_Ints(t *testing.T) {
	s := LetterStatuses{Exact, Partial, Miss, Unknown}
	expected := []int{3, 2, 1, 0}
	if got := s.Ints(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestNew(t *testing.T) {
	w := New("hello")
	if w.Word != "HELLO" {
		t.Errorf("Expected HELLO, got %s", w.Word)
	}
}

func TestWord_Check(t *testing.T) {
	testCases := []struct {
		guess    string
		secret   string
		expected []LetterStatus
		desc     string
	}{
		{"WEIRD", "WORLD", []LetterStatus{Exact, Miss, Miss, Partial, Exact}, "contains WRD"},
		{"SAVED", "WORLD", []LetterStatus{Miss, Miss, Miss, Miss, Exact}, "contains just D"},
		{"SEIZE", "WORLD", []LetterStatus{Miss, Miss, Miss, Miss, Miss}, "contains nothing"},
		{"SEGMENT", "WORLD", []LetterStatus{Miss, Miss, Miss, Miss, Miss, Miss, Miss}, "longer than the secret"},
		{"SEX", "WORLD", []LetterStatus{Miss, Miss, Miss}, "shorter than the secret"},
		{"LOROC", "WORLD", []LetterStatus{Partial, Exact, Exact, Miss, Miss}, "one correct 'O' and one wrong 'O'"},
		{"ALELE", "EVENT", []LetterStatus{Miss, Miss, Exact, Miss, Partial}, "one correct E and one wrong E"},
		{"EVENT", "EVENT", []LetterStatus{Exact, Exact, Exact, Exact, Exact}, "same word"},
		{"RITES", "SITES", []LetterStatus{Miss, Exact, Exact, Exact, Exact}, "first letter misses"},
		{"WEEEE", "EEEEE", []LetterStatus{Miss, Exact, Exact, Exact, Exact}, "all the letters exist but the count is wrong"},
		{"LOLLY", "ALLOY", []LetterStatus{Partial, Partial, Exact, Miss, Exact}, "third duplicate has no occurrence left to claim"},
		{"LLAMA", "ALLOY", []LetterStatus{Partial, Exact, Partial, Miss, Miss}, "exact match claims before earlier partial"},
		{"CAFÉ", "FACE", []LetterStatus{Partial, Exact, Partial, Miss}, "accented letters are distinct"},
	}
	for _, tt := range testCases {
		t.Run(tt.desc, func(t *testing.T) {
			// given
			guess := New(tt.guess)
			secret := New(tt.secret)
			// when
			result := guess.Check(secret)
			// then
			if !reflect.DeepEqual(result, LetterStatuses(tt.expected)) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
			if !reflect.DeepEqual(guess.Stats, LetterStatuses(tt.expected)) {
				t.Errorf("Expected stats %v, got %v", tt.expected, guess.Stats)
			}
		})
	}
}

func TestWord_CheckIsIdempotent(t *testing.T) {
	guess := New("LOLLY")
	secret := New("ALLOY")
	first := guess.Check(secret)
	second := guess.Check(secret)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected %v, got %v", first, second)
	}
}

func TestWord_Correct(t *testing.T) {
	testCases := []struct {
		word     Word
		expected bool
		desc     string
	}{
		{Word{Word: "EVENT", Stats: LetterStatuses{Exact, Exact, Exact, Exact, Exact}}, true, "all exact"},
		{Word{Word: "ALLOY", Stats: LetterStatuses{Partial, Exact, Exact, Exact, Exact}}, false, "one partial"},
		{Word{Word: "ALLOY"}, false, "unchecked word"},
		{Word{}, false, "zero value"},
	}
	for _, tt := range testCases {
		t.Run(tt.desc, func(t *testing.T) {
			if got := tt.word.Correct(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
