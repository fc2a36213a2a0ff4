package views

import "github.com/networkteam/uikit/ui"

const tailwindSetup = `<script src="https://cdn.tailwindcss.com"></script>` +
	`<script>tailwind.config = { darkMode: 'class' }</script>`

// clientScript posts activations of story buttons and appends actions received over SSE.
const clientScript = `<script>
document.addEventListener('click', function (e) {
  var el = e.target.closest('[data-action-args]');
  var canvas = el && el.closest('[data-activate-url]');
  if (!canvas) return;
  e.preventDefault();
  fetch(canvas.dataset.activateUrl, { method: 'POST', body: new URLSearchParams(el.dataset.actionArgs) });
});
(function () {
  var panel = document.getElementById('actions');
  if (!panel || !panel.dataset.sseUrl) return;
  var source = new EventSource(panel.dataset.sseUrl);
  source.addEventListener('new-action', function (e) {
    var empty = panel.querySelector('[data-empty]');
    if (empty) empty.remove();
    panel.querySelector('ul').insertAdjacentHTML('afterbegin', e.data);
  });
})();
</script>`

type themeSwitch struct {
	theme   string
	label   string
	href    string
	variant ui.ButtonVariant
}

// themeSwitches links the current page in every theme, highlighting the active one.
func themeSwitches(opts HandlerOptions, currentStoryID string) []themeSwitch {
	switches := make([]themeSwitch, 0, 2)
	for _, theme := range []string{"light", "dark"} {
		themed := opts
		themed.Theme = theme
		s := themeSwitch{
			theme:   theme,
			label:   "Light",
			href:    themed.indexURL(),
			variant: ui.ButtonVariantGhost,
		}
		if theme == "dark" {
			s.label = "Dark"
		}
		if currentStoryID != "" {
			s.href = themed.storyURL(currentStoryID, nil)
		}
		if opts.Theme == theme {
			s.variant = ui.ButtonVariantSecondary
		}
		switches = append(switches, s)
	}
	return switches
}
