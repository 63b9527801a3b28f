package constant

// AsciiArtLogo is the application's banner shown in the root command help.
const AsciiArtLogo = `
   ___                                    __ 
  / _/______ ___ _  ___ ________ ____ ___/ /_
 / _/ __/ _ ` + "`" + `/  ' \/ -_) __/ _ ` + "`" + `(_-</ __/
/_//_/  \_,_/_/_/_/\__/\__/\_,_/___/\__/ 
`
