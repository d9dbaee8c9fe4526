// Package clipboard copies text to the system clipboard by piping it into
// the platform tool (pbcopy, wl-copy, xclip, xsel or clip.exe).
//
//	if err := clipboard.System().Write(ctx, text); err != nil {
//		log.Warn("clipboard unavailable", logger.Error(err))
//	}
package clipboard
