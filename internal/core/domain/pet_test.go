package domain

import "testing"

func TestPageCount(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{25, 10, 3},
		{5, 10, 1},
		{0, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{30, 10, 3},
		{7, 0, 1},
	}

	for _, tc := range cases {
		if got := PageCount(tc.total, tc.pageSize); got != tc.want {
			t.Fatalf("PageCount(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}

func TestChunkPets(t *testing.T) {
	pets := make([]Pet, 7)
	for i := range pets {
		pets[i].ID = int64(i + 1)
	}

	rows := ChunkPets(pets, 3)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if len(rows[0]) != 3 || len(rows[1]) != 3 || len(rows[2]) != 1 {
		t.Fatalf("unexpected row sizes: %d/%d/%d", len(rows[0]), len(rows[1]), len(rows[2]))
	}
	if rows[2][0].ID != 7 {
		t.Fatalf("order not preserved: %+v", rows[2])
	}

	if got := ChunkPets(nil, 3); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	if got := ChunkPets(pets, 0); got != nil {
		t.Fatalf("expected nil for non-positive row size, got %v", got)
	}
}
