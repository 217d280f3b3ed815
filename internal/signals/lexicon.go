// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package signals

import "regexp"

// Lexicon patterns. All of them run against lower-cased text. Terms ending
// in an accented letter carry no trailing \b because RE2 word boundaries
// are ASCII-only.
var (
	// riderLexRe matches rider / technical rider / tech specs vocabulary.
	riderLexRe = regexp.MustCompile(`\briders?\b|\btech(?:nical)?\s*specs?\b|\bfitxa\s+t[eè]cnica|\bficha\s+t[eé]cnica|\btechnical\s+requirements\b|\bnecessitats\s+t[eè]cniques|\bnecesidades\s+t[eé]cnicas`)

	// stagePlotRe matches stage plot vocabulary and its common variants.
	stagePlotRe = regexp.MustCompile(`\bsta?ge[\s\-]*(?:plot|plott|plan|plano|plant|layout|map|diagram)s?\b|\bstageplot\b|\bplanta\s+(?:d['’]\s*|de\s+l['’]\s*|de\s+)?escenari|\bplano\s+(?:de\s+|del\s+)?escenario\b|\bplot\s+de\s+escen|\bdisposici[oó]\s+(?:a\s+l['’]|de\s+l['’]|en\s+el\s+|del\s+)?escen`)
	// splitStagePlotRe catches "sta ge plot" left by PDF extraction.
	splitStagePlotRe = regexp.MustCompile(`\bsta?\s*ge[\s\-]*(?:plot|plan|layout)s?\b`)

	// patchLexRe matches patch / input list vocabulary.
	patchLexRe = regexp.MustCompile(`\bpatch(?:\s*list)?\b|\bpatchlist\b|\binputs?\s*(?:list|chart|sheet)\b|\bchannel\s*(?:list|chart)\b|\bllista\s+(?:d['’]\s*|de\s+)(?:entrades|canals)\b|\blista\s+de\s+(?:entradas|canales)\b`)

	// audioLexRe matches general live-audio vocabulary.
	audioLexRe = regexp.MustCompile(`\bmics?\b|\bmicros?\b|\bmicrophones?\b|\bmicr[oòó]fon\w*|\bdi\b|\bdi[\s\-]?box\w*|\bxlr\b|\bphantom\b|\b48\s?v\b|\bmonitor\w*|\bfoh\b|\bfront\s+of\s+house\b|\bpa\b|\bp\.a\.|\bmixer\b|\bmixing\s+desk\b|\bmesa\s+de\s+(?:mezclas|sonido)\b|\btaula\s+de\s+(?:so|mescles)\b|\bconsol[ea]\b|\bin[\s\-]?ears?\b|\biems?\b|\bwedges?\b|\bfalques?\b|\bcuñas?|\bsound\s*check\b|\bprova\s+de\s+so\b|\bprueba\s+de\s+sonido\b|\bsubwoofers?\b|\bstage\s*box\b|\bmultipar\b|\bsnake\b`)

	// backlineRe matches backline and gear-list vocabulary.
	backlineRe = regexp.MustCompile(`\bbackline\b|\bgear\s*list\b|\bequipment\s*list\b|\bllista\s+d['’]equip|\blista\s+de\s+equipo|\bdrum\s*kit\b|\bbateria\b|\bbatería\b|\bamps?\b|\bamplifiers?\b|\bamplificador\w*|\bcymbals?\b|\bplats\b|\bplatos\b|\bcabinets?\b`)

	// needsRe matches explicit needs / requirements vocabulary.
	needsRe = regexp.MustCompile(`\bneeds?\b|\brequirements?\b|\brequired\b|\bnecessit\w*|\bnecesit\w*|\bnecesidades\b|\brequisits?\b|\brequisitos?\b|\bmust\s+(?:provide|supply)\b`)

	// adminRe matches administrative and legal vocabulary.
	adminRe = regexp.MustCompile(`\binvoices?\b|\bfactura\b|\bcontracts?\b|\bcontracte\b|\bcontrato\b|\bpress\s+release\b|\bnota\s+de\s+(?:premsa|prensa)\b|\bpurchase\s+order\b`)

	// monitorsRe matches monitoring vocabulary (monitors, in-ears, wedges).
	monitorsRe = regexp.MustCompile(`\bmonitor(?:s|es|atge|aje|ing)?\b|\bin[\s\-]?ears?\b|\biems?\b|\bwedges?\b|\bfalques?\b|\bfalca\b|\bcuñas?|\bside[\s\-]?fills?\b|\bretorns?\b|\bretornos?\b`)

	// contactWordRe matches an explicit contact heading or any email sign.
	contactWordRe = regexp.MustCompile(`\bcontact[eo]?s?\b|@`)

	// instrumentRe matches instrument and source names.
	instrumentRe = regexp.MustCompile(`\b(?:kick|bd|bombo|snare|sn|caixa|caja|hi[\s\-]?hat|hh|toms?|floor\s+tom|overheads?|oh|bass|baix|bajo|guitars?|guitarra|gtr|keys|keyboards?|teclats?|teclados?|piano|synths?|sampler|vocals?|vox|veu|veus|voz|voces|sax|saxo|saxophone|trumpet|trompeta|trombone|violin|cello|violoncel|acoustic|accordion|acordeon|percussion|percusi[oó]n|drums?|bateria|laptop|dj|cajon|caj[oó]n|congas?|bongos?|playback|brass|flute|flauta|harp|arpa|ukulele|banjo|mandolin|clarinet|clarinete?)\b|\b(?:violí|acordió|percussió|batería|ac[uú]stica)`)

	// micModelRe matches known microphone models.
	micModelRe = regexp.MustCompile(`\b(?:sm[\s\-]?(?:57|58|7b?|81|86|87a?|91|98)|beta[\s\-]?(?:52a?|56a?|57a?|58a?|87a?|91a?|98\w*)|e[\s\-]?(?:60[2-9]|614|835|845|865|90[1-6]|935|945)|md[\s\-]?(?:421|441|409)|kms[\s\-]?10[45]|km[\s\-]?18[04]|c[\s\-]?(?:214|414|451|535)|d[\s\-]?(?:112|12|40|22)|d6|atm[\s\-]?\d{3}\w*|re[\s\-]?(?:20|320)|nt[\s\-]?[15]a?|opus[\s\-]?\d{2,3}|m[\s\-]?(?:88|201)|pr[\s\-]?(?:22|30|40)|pg[\s\-]?(?:48|58)|ksm[\s\-]?\d{2,3}|mk[\s\-]?4|u[\s\-]?87|tlm[\s\-]?10[23]|audix\s+(?:i5|d\d))\b`)

	// micWordRe matches generic microphone words.
	micWordRe = regexp.MustCompile(`\bmics?\b|\bmikes?\b|\bmicros?\b|\bmicrophones?\b|\bmicr[oòó]fon(?:s|os)?\b|\bcondens\w*|\bdynamic\b|\bdin[aà]mic\w*|\bclip[\s\-]?on\b|\bheadset\b|\bdiadema\b|\bwireless\b|\binal[aà]mbric\w*|\bradio\s?mics?\b`)

	// diRe matches direct-input vocabulary.
	diRe = regexp.MustCompile(`\bdi\b|\bd\.i\.?|\bdi[\s\-]?box(?:es)?\b|\bdirect\s+(?:box|input)\b|\bcaixa\s+directa\b|\bcajas?\s+directas?\b|\bline\s*(?:box|in|input)\b|\breamp\b|\bbss\b|\bradial\b|\bklark\b`)

	// xlrRe matches the XLR connector.
	xlrRe = regexp.MustCompile(`\bxlr\b`)

	// implicitDIRe matches "computer plus audio interface" phrasing, which
	// implies a direct input.
	implicitDIRe = regexp.MustCompile(`\b(?:computer|laptop|ordinador|ordenador|pc|mac|macbook)\b.{0,60}\b(?:audio\s+interface|interf[ií]cie|interfaz|sound\s*card|targeta\s+de\s+so|tarjeta\s+de\s+sonido)`)

	// standRe matches microphone stand vocabulary.
	standRe = regexp.MustCompile(`\bstands?\b|\bboom\b|\bpeus?\b|\bpies?\b|\bround\s+base\b|\bclamp\b|\bpinza\b|\bjirafa\b|\bgirafa\b`)

	// notesRe matches channel processing notes.
	notesRe = regexp.MustCompile(`\bphantom\b|\b48\s?v\b|\beq\b|\bgate\b|\bcomp\b|\bcompress(?:or|ion)\b|\bcompresor\b|\bpolarit\w*|\bpolaridad\b|\bphase\b|\bclick\b|\binsert\b|\breverb\b|\bhpf\b|\blow[\s\-]?cut\b`)

	// equivalentRe matches "equivalent / similar / alternative" phrasing.
	equivalentRe = regexp.MustCompile(`\bequivalent\w*|\bequivalentes?\b|\bsimilars?\b|\balternatives?\b|\balternativas?\b|\bcompatible\b`)

	// standardKitRe matches "standard microphone kit" phrasing.
	standardKitRe = regexp.MustCompile(`\bstandard\s+(?:mic(?:rophone)?s?\s+kit|mic(?:rophone)?s|kit)\b|\bkit\s+(?:de\s+)?micr[oòó]f\w*\s+est[aà]nd(?:ard|ar)\b|\bmicrofon[ií]a\s+est[aàá]nd(?:ard|ar)\b`)

	// channelLineRe matches a line that starts with an index-like token
	// followed by a separator and then text.
	channelLineRe = regexp.MustCompile(`(?m)^(?:(?:ch|chan|channel|canal|input|in|entrada)\s*\.?\s*)?\d{1,2}\s*[.):\-–—|]\s*[^\d\s]|^(?:ch|chan|channel|canal|input)\s*\.?\s*\d{1,2}\s+[^\d\s]`)
)
