// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alphabet

// wordsFiElements is a curated list of common, everyday Finnish nouns.
// This tool ships a words-fi word list separate from the assembly
// list; the list below is a hand-curated substitute covering the same
// role (a short, memorable, unambiguous word per element) rather than
// the exact upstream list, which was not available to draw from.
var wordsFiElements = []string{
	"talo", "auto", "kissa", "koira", "lintu", "kala", "vesi", "tuli", "maa",
	"ilma", "metsä", "järvi", "meri", "saari", "vuori", "kivi", "hiekka",
	"lumi", "jää", "sade", "aurinko", "kuu", "tähti", "pilvi", "tuuli", "sumu",
	"kevät", "kesä", "syksy", "talvi", "äiti", "isä", "lapsi", "veli", "sisko",
	"ystävä", "naapuri", "opettaja", "lääkäri", "poliisi", "kirja", "kynä",
	"paperi", "pöytä", "tuoli", "sänky", "ikkuna", "ovi", "seinä", "katto",
	"leipä", "maito", "juusto", "voi", "kahvi", "tee", "sokeri", "suola",
	"pippuri", "omena", "peruna", "porkkana", "sipuli", "tomaatti", "kurkku",
	"mansikka", "mustikka", "puolukka", "päärynä", "juna", "bussi",
	"lentokone", "laiva", "polkupyörä", "moottori", "rengas", "ratti",
	"penkki", "kori", "raha", "pankki", "kauppa", "tori", "tehdas", "toimisto",
	"koulu", "kirkko", "sairaala", "kirjasto", "musiikki", "laulu", "tanssi",
	"elokuva", "teatteri", "taide", "maalaus", "kuva", "valokuva", "runo",
	"kieli", "sana", "lause", "kirje", "viesti", "puhelin", "tietokone",
	"näyttö", "näppäimistö", "hiiri", "vaatteet", "paita", "housut", "kenkä",
	"takki", "hattu", "käsine", "sukka", "vyö", "laukku", "kello", "aika",
	"päivä", "yö", "aamu", "ilta", "viikko", "kuukausi", "vuosi", "hetki",
	"työ", "leikki", "peli", "urheilu", "juoksu", "uinti", "hiihto",
	"luistelu", "pyöräily", "kävely", "nimi", "osoite", "numero", "avain",
	"lukko", "vartija", "ovikello", "portti", "aita", "puutarha",
}
