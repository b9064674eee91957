package constant

// AsciiArtLogo is the banner printed above the root command help.
const AsciiArtLogo = `
     _             _                _
 ___| |_ __ _  ___| | _____ __ _ __| | ___
/ __| __/ _' |/ __| |/ / __/ _' | |/ __/
\__ \ || (_| | (__|   < (_| (_| | | (__
|___/\__\__,_|\___|_|\_\___\__,_|_|\___|`
