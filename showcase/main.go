// Command showcase runs the expandable fab headlessly: it mounts the
// widget tree, taps the main button, and logs the satellite poses while
// the spring animation plays out.
//
// Drop an orbit.yaml next to the binary to restyle the fab; see the
// sample file in this directory.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/go-orbit/orbit/pkg/animation"
	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/theme"
	"github.com/go-orbit/orbit/pkg/widgets"
)

const frameDuration = 16 * time.Millisecond

func main() {
	log.SetFlags(0)

	themeData, err := theme.LoadOptional(".")
	if err != nil {
		log.Fatalf("load theme: %v", err)
	}

	owner := core.NewBuildOwner()
	root := core.MountRoot(theme.FabScope{
		Data: themeData,
		Child: widgets.ExpandableFab{
			OnFirstTap:  func() { log.Println("action: first") },
			OnSecondTap: func() { log.Println("action: second") },
			OnThirdTap:  func() { log.Println("action: third") },
		},
	}, owner)
	owner.FlushBuild()

	log.Println("tap: expand")
	tapMainButton(root)
	runFrames(owner, root)

	log.Println("tap: collapse")
	tapMainButton(root)
	runFrames(owner, root)

	root.Unmount()
}

// runFrames pumps the frame loop until every animation settles, logging
// the satellite poses a few times along the way.
func runFrames(owner *core.BuildOwner, root core.Element) {
	frame := 0
	for {
		animation.StepTickers()
		owner.FlushBuild()

		if frame%15 == 0 {
			logPoses(root)
		}
		frame++

		if !animation.HasActiveTickers() && !owner.NeedsWork() {
			logPoses(root)
			return
		}
		time.Sleep(frameDuration)
	}
}

// tapMainButton taps the last gesture detector in the tree. The fab
// builds its main button after the satellites, so it is always last.
func tapMainButton(root core.Element) {
	var main *widgets.GestureDetector
	visitAll(root, func(e core.Element) {
		if d, ok := e.Widget().(widgets.GestureDetector); ok {
			main = &d
		}
	})
	if main == nil {
		log.Fatal("no tappable button in tree")
	}
	main.HandleTap()
}

// logPoses prints offset and opacity for each satellite slot.
func logPoses(root core.Element) {
	type pose struct {
		offset  string
		opacity float64
	}
	var poses []pose
	var pending *pose

	visitAll(root, func(e core.Element) {
		switch w := e.Widget().(type) {
		case widgets.Transform:
			poses = append(poses, pose{
				offset: fmt.Sprintf("(%.1f, %.1f)", w.Offset.X, w.Offset.Y),
			})
			pending = &poses[len(poses)-1]
		case widgets.Opacity:
			if pending != nil {
				pending.opacity = w.Opacity
				pending = nil
			}
		}
	})

	// The last transform is the main button; it has no opacity wrapper.
	for i, p := range poses[:len(poses)-1] {
		log.Printf("  satellite %d: offset=%s opacity=%.2f", i+1, p.offset, p.opacity)
	}
}

func visitAll(e core.Element, fn func(core.Element)) {
	fn(e)
	e.VisitChildren(func(child core.Element) {
		visitAll(child, fn)
	})
}
