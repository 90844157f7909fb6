package ngmat_test

import (
	"bytes"
	"testing"

	"github.com/bjaus/ngmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		el   *ngmat.Element
		want string
	}{
		"empty": {
			el:   ngmat.NewElement("mat-icon"),
			want: "<mat-icon></mat-icon>",
		},
		"flag and attr in order": {
			el:   ngmat.NewElement("button").Flag("mat-button").Attr("color", "primary"),
			want: `<button mat-button="" color="primary"></button>`,
		},
		"attr if": {
			el:   ngmat.NewElement("a").AttrIf(false, "href", "/x").AttrIf(true, "title", "t"),
			want: `<a title="t"></a>`,
		},
		"escaped value": {
			el:   ngmat.NewElement("div").Attr("[hidden]", `a && b == "c"`),
			want: `<div [hidden]="a &amp;&amp; b == &quot;c&quot;"></div>`,
		},
		"quotes and angle brackets in expressions": {
			el:   ngmat.NewElement("div").Attr("[class.on]", "x<1?'a':'b'"),
			want: `<div [class.on]="x<1?'a':'b'"></div>`,
		},
		"children": {
			el: ngmat.NewElement("mat-list").
				Append(ngmat.NewElement("mat-list-item").AppendText("one")).
				AppendText("").
				AppendText("<br>"),
			want: "<mat-list><mat-list-item>one</mat-list-item><br></mat-list>",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.el.String())
		})
	}
}

func TestElementWriteTo(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n, err := ngmat.NewElement("p").AppendText("hi").WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestElementAppendRendersChildLate(t *testing.T) {
	t.Parallel()
	child := ngmat.NewElement("mat-row")
	parent := ngmat.NewElement("mat-table").Append(child)
	child.Attr("class", "late").AppendText("x")
	assert.Equal(t, `<mat-table><mat-row class="late">x</mat-row></mat-table>`, parent.String())
}
