// Package talkie is a talking-avatar widget for [Ebitengine].
//
// A [Scene] draws a background, a particle weather layer and one character
// standing on a ground line. Characters speak in a blocky speech bubble that
// clears itself after a duration proportional to the text. The active
// character can be swapped at any time; a line that is still being said
// carries over to the new character for the time it has left.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := talkie.NewScene(talkie.SceneOptions{Weather: talkie.WeatherSnow})
//	scene.Say("Hello!")
//	talkie.Run(scene, talkie.RunConfig{Title: "Talkie", Width: 800, Height: 600})
//
// For input handling, wrap the scene in your own [ebiten.Game] and run it
// with [RunGame]; see examples/talkbot.
//
// # Characters
//
// Built-in characters are registered in [DefaultCatalog]:
//
//   - "robot": the procedural [PixelRobot], whose mouth flashes while talking
//   - "portrait" and "portrait_angled": [Portrait], drawn from a few pose
//     images, idling with blinks and sideways glances
//   - "grid_portrait": [GridPortrait], drawn from a 6×6 expression sheet and
//     accepting [Host.SetExpression]
//
// Unknown keys fall back to [DefaultCharacter]. Portrait images load through
// an [AssetLoader] without blocking the frame loop; until they arrive, or if
// they fail, a placeholder panel is drawn and speech keeps working.
//
// # Timing
//
// All timeouts run on the scene's [Clock], a virtual scheduler advanced from
// Update by the wall-clock time since the previous frame. Timer callbacks
// therefore run on the frame loop, and tests can drive time with
// [Scene.Tick] or [Clock.Advance].
//
// # Configuration
//
// [LoadConfig] reads a YAML file and TALKIE_* environment variables.
// Control scripts ([LoadScript]) replay say, weather, background, character
// and expression changes for demos and screenshot runs.
//
// Avatar events ([Event]) can be forwarded to a [Donburi] world with the
// adapter in talkie/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package talkie
