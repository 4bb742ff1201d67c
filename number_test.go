package scheme

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		num, den         int64
		wantNum, wantDen int64
	}{
		{2, 4, 1, 2},
		{-2, 4, -1, 2},
		{2, -4, -1, 2},
		{-2, -4, 1, 2},
		{0, 5, 0, 1},
		{0, -5, 0, 1},
		{6, 3, 2, 1},
		{7, 7, 1, 1},
		{5, 6, 5, 6},
		{-9, -12, 3, 4},
	}
	for _, test := range tests {
		num, den, err := normalize(test.num, test.den)
		if err != nil {
			t.Fatalf("normalize(%d, %d): %v", test.num, test.den, err)
		}
		if num != test.wantNum || den != test.wantDen {
			t.Errorf("normalize(%d, %d) = %d/%d, want %d/%d",
				test.num, test.den, num, den, test.wantNum, test.wantDen)
		}
		if den <= 0 {
			t.Errorf("normalize(%d, %d): denominator %d not positive", test.num, test.den, den)
		}
		if num != 0 && gcd(num, den) != 1 {
			t.Errorf("normalize(%d, %d) = %d/%d not in lowest terms", test.num, test.den, num, den)
		}
	}

	if _, _, err := normalize(1, 0); err == nil {
		t.Fatal("normalize(1, 0): want error")
	} else if kind, _ := KindOf(err); kind != ErrDivisionByZero {
		t.Errorf("normalize(1, 0): kind = %v", kind)
	}
}

func TestGcdLcm(t *testing.T) {
	if g := gcd(12, 18); g != 6 {
		t.Errorf("gcd(12, 18) = %d", g)
	}
	if g := gcd(-12, 18); g != 6 {
		t.Errorf("gcd(-12, 18) = %d", g)
	}
	if g := gcd(0, 7); g != 7 {
		t.Errorf("gcd(0, 7) = %d", g)
	}
	if m := lcm(4, 6); m != 12 {
		t.Errorf("lcm(4, 6) = %d", m)
	}
	if m := lcm(-4, 6); m != 12 {
		t.Errorf("lcm(-4, 6) = %d", m)
	}
}

func TestRatioIdentities(t *testing.T) {
	samples := []ratio{
		{0, 1}, {1, 1}, {-1, 1}, {1, 2}, {-3, 4}, {5, 6}, {7, 3}, {-11, 8},
	}
	for _, x := range samples {
		for _, y := range samples {
			sum, err := x.add(y).sub(y).normalized()
			if err != nil {
				t.Fatal(err)
			}
			if sum.compare(x) != 0 {
				t.Errorf("(%v + %v) - %v = %v, want %v", x, y, y, sum, x)
			}
			if y.num == 0 {
				continue
			}
			prod := x.mul(y)
			q, err := prod.div(y)
			if err != nil {
				t.Fatal(err)
			}
			q, err = q.normalized()
			if err != nil {
				t.Fatal(err)
			}
			if q.compare(x) != 0 {
				t.Errorf("(%v * %v) / %v = %v, want %v", x, y, y, q, x)
			}
		}
	}
}

func TestCompareTrichotomy(t *testing.T) {
	samples := []ratio{
		{-2, 1}, {-1, 2}, {0, 1}, {1, 3}, {1, 2}, {2, 3}, {1, 1}, {7, 3},
	}
	for _, x := range samples {
		for _, y := range samples {
			lt := x.compare(y) < 0
			eq := x.compare(y) == 0
			gt := x.compare(y) > 0
			n := 0
			for _, b := range []bool{lt, eq, gt} {
				if b {
					n++
				}
			}
			if n != 1 {
				t.Errorf("compare(%v, %v): lt=%v eq=%v gt=%v", x, y, lt, eq, gt)
			}
			if x.compare(y) != -y.compare(x) {
				t.Errorf("compare(%v, %v) not antisymmetric", x, y)
			}
		}
	}
}

func TestIntPow(t *testing.T) {
	tests := []struct {
		base, exp int64
		want      int64
		wantKind  ErrorKind
		wantErr   bool
	}{
		{2, 10, 1024, 0, false},
		{3, 4, 81, 0, false},
		{-2, 3, -8, 0, false},
		{-2, 4, 16, 0, false},
		{5, 0, 1, 0, false},
		{0, 5, 0, 0, false},
		{1, 62, 1, 0, false},
		{2, 62, 1 << 62, 0, false},
		{2, -1, 0, ErrType, true},
		{0, 0, 0, ErrType, true},
		{2, 64, 0, ErrOverflow, true},
		{10, 30, 0, ErrOverflow, true},
	}
	for _, test := range tests {
		got, err := intPow(test.base, test.exp)
		if test.wantErr {
			if err == nil {
				t.Errorf("intPow(%d, %d): want error, got %d", test.base, test.exp, got)
				continue
			}
			if kind, _ := KindOf(err); kind != test.wantKind {
				t.Errorf("intPow(%d, %d): kind = %v, want %v", test.base, test.exp, kind, test.wantKind)
			}
			continue
		}
		if err != nil {
			t.Errorf("intPow(%d, %d): %v", test.base, test.exp, err)
			continue
		}
		if got != test.want {
			t.Errorf("intPow(%d, %d) = %d, want %d", test.base, test.exp, got, test.want)
		}
	}
}

func TestRatioValueCollapses(t *testing.T) {
	v, err := ratio{4, 2}.value()
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := v.(*Integer); !ok || n.N != 2 {
		t.Errorf("ratio{4,2}.value() = %s, want integer 2", Show(v))
	}

	v, err = ratio{1, 2}.value()
	if err != nil {
		t.Fatal(err)
	}
	if r, ok := v.(*Rational); !ok || r.Num != 1 || r.Den != 2 {
		t.Errorf("ratio{1,2}.value() = %s, want 1/2", Show(v))
	}
}
