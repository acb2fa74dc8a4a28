package terminal

import "testing"

func TestCenterViewport(t *testing.T) {
	cases := []struct {
		name                  string
		gridW, gridH          int
		viewW, viewH          int
		cx, cy                int
		wantX, wantY          int
		wantWidth, wantHeight int
	}{
		{"centered", 100, 100, 20, 10, 50, 50, 40, 45, 20, 10},
		{"clamped top-left", 100, 100, 20, 10, 0, 0, 0, 0, 20, 10},
		{"clamped bottom-right", 100, 100, 20, 10, 99, 99, 80, 90, 20, 10},
		{"grid smaller than view", 15, 8, 20, 10, 7, 4, 0, 0, 15, 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := CenterViewport(c.gridW, c.gridH, c.viewW, c.viewH, c.cx, c.cy)
			want := Viewport{X: c.wantX, Y: c.wantY, Width: c.wantWidth, Height: c.wantHeight}
			if v != want {
				t.Errorf("CenterViewport = %+v, want %+v", v, want)
			}
		})
	}
}

func TestViewportContains(t *testing.T) {
	v := Viewport{X: 5, Y: 5, Width: 10, Height: 4}
	if !v.Contains(5, 5) || !v.Contains(14, 8) {
		t.Error("corners should be inside the viewport")
	}
	if v.Contains(4, 5) || v.Contains(15, 5) || v.Contains(5, 9) {
		t.Error("cells just outside the viewport reported as inside")
	}
}
