package storage

import "testing"

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, lines int }{{100, 20}, {50, 9}, {200, 41}} {
		if _, err := store.SaveScore(ModeNormal, s.score, s.lines); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different mode
	if _, err := store.SaveScore(ModeAuto, 500, 120); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(ModeNormal, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct{ score, lines int }{{200, 41}, {100, 20}, {50, 9}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Lines != w.lines {
			t.Errorf("rank %d = %d/%d, want %d/%d", i, scores[i].Score, scores[i].Lines, w.score, w.lines)
		}
		if scores[i].Mode != ModeNormal {
			t.Errorf("rank %d mode = %q", i, scores[i].Mode)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("rank %d has no timestamp", i)
		}
	}

	autoScores, err := store.TopScores(ModeAuto, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(autoScores) != 1 {
		t.Errorf("Expected 1 auto score, got %d", len(autoScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ModeNormal, (i+1)*100, i)
	}

	scores, err := store.TopScores(ModeNormal, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(ModeNormal)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveScore(ModeNormal, 100, 1)
	store.SaveScore(ModeNormal, 300, 1)
	store.SaveScore(ModeNormal, 200, 1)

	high, err = store.HighScore(ModeNormal)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ModeNormal, 100, 1)
	store.SaveScore(ModeNormal, 200, 2)
	store.SaveScore(ModeAuto, 300, 3)

	if err := store.ClearScores(ModeNormal); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	normal, _ := store.TopScores(ModeNormal, 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal scores after clear, got %d", len(normal))
	}
	auto, _ := store.TopScores(ModeAuto, 10)
	if len(auto) != 1 {
		t.Errorf("Auto scores should not be affected by clearing normal")
	}
}
