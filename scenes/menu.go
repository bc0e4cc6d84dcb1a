package scenes

import (
	"bytes"
	"image/color"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu.
type MenuScene struct {
	ui           *ebitenui.UI
	sceneChanger SceneChanger
}

// NewMenuScene creates the title menu.
func NewMenuScene(sc SceneChanger) *MenuScene {
	ms := &MenuScene{sceneChanger: sc}
	ms.buildUI()
	return ms
}

func (ms *MenuScene) Update() {
	ms.ui.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ms.ui.Draw(screen)
}

func (ms *MenuScene) buildUI() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	var titleFace text.Face = &text.GoTextFace{Source: fontSource, Size: 32}
	var buttonFace text.Face = &text.GoTextFace{Source: fontSource, Size: 16}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("STRIDER", &titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	enterButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 36),
		),
		widget.ButtonOpts.Image(menuButtonImage()),
		widget.ButtonOpts.Text("Enter Arena", &buttonFace, &widget.ButtonTextColor{
			Idle: color.RGBA{230, 230, 230, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ms.sceneChanger.ChangeScene(NewArenaScene(ms.sceneChanger))
		}),
	)
	contentContainer.AddChild(enterButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 36),
		),
		widget.ButtonOpts.Image(menuButtonImage()),
		widget.ButtonOpts.Text("Quit", &buttonFace, &widget.ButtonTextColor{
			Idle: color.RGBA{230, 230, 230, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			os.Exit(0)
		}),
	)
	contentContainer.AddChild(quitButton)

	rootContainer.AddChild(contentContainer)

	ms.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func menuButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}
