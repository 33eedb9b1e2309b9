package textstat

import "testing"

func TestMeasurePlainText(t *testing.T) {
	stats := Measure("Go is expressive. Go is concise! Is Go fast?")
	if stats.Words != 9 {
		t.Fatalf("expected 9 words, got %d", stats.Words)
	}
	if stats.Sentences != 3 {
		t.Fatalf("expected 3 sentences, got %d", stats.Sentences)
	}
}

func TestMeasureCharacters(t *testing.T) {
	stats := Measure("Hi there.")
	if stats.Characters != 9 {
		t.Fatalf("expected 9 characters, got %d", stats.Characters)
	}
}

func TestMeasureTrailingQuote(t *testing.T) {
	stats := Measure(`He said "stop." Then he left.`)
	if stats.Sentences != 2 {
		t.Fatalf("expected 2 sentences, got %d", stats.Sentences)
	}
}

func TestMeasureFragmentCountsOneSentence(t *testing.T) {
	stats := Measure("just a fragment")
	if stats.Sentences != 1 {
		t.Fatalf("expected 1 sentence, got %d", stats.Sentences)
	}
	if stats.Words != 3 {
		t.Fatalf("expected 3 words, got %d", stats.Words)
	}
}

func TestMeasureBlankText(t *testing.T) {
	stats := Measure("   \n\t ")
	if stats.Words != 0 || stats.Sentences != 0 || stats.Characters != 0 {
		t.Fatalf("expected zero stats for blank text, got %+v", stats)
	}
}

func TestMeasureUnicodeTerminators(t *testing.T) {
	stats := Measure("你好。再见！")
	if stats.Sentences != 2 {
		t.Fatalf("expected 2 sentences, got %d", stats.Sentences)
	}
	if stats.Characters != 6 {
		t.Fatalf("expected 6 characters, got %d", stats.Characters)
	}
}

func TestCompressionPctHalved(t *testing.T) {
	in := Measure("one two three four five six seven eight nine ten")
	out := Measure("one two three four five")
	if pct := CompressionPct(in, out); pct != 50 {
		t.Fatalf("expected 50%% compression, got %f", pct)
	}
}

func TestCompressionPctEmptyInput(t *testing.T) {
	if pct := CompressionPct(Stats{}, Measure("anything")); pct != 0 {
		t.Fatalf("expected 0 for empty input, got %f", pct)
	}
}

func TestCompressionPctClampsExpansion(t *testing.T) {
	in := Measure("two words")
	out := Measure("this output grew to five words total yes")
	if pct := CompressionPct(in, out); pct != -100 {
		t.Fatalf("expected clamp at -100, got %f", pct)
	}
}
